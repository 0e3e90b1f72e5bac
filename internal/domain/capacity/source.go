package capacity

import "context"

// Source is the read side the engine depends on.
// Implementations must return only rows for the given range where a range applies.
type Source interface {
	// ValidatedInbound returns inbound document lines dated inside r.
	ValidatedInbound(ctx context.Context, r DateRange) ([]DemandLine, error)

	// ValidatedOutbound returns outbound plan entries dated inside r.
	ValidatedOutbound(ctx context.Context, r DateRange) ([]DemandLine, error)

	// Norms returns every productivity norm.
	Norms(ctx context.Context) ([]NormEntry, error)

	// Availability returns availability records dated inside r.
	Availability(ctx context.Context, r DateRange) ([]AvailabilityEntry, error)

	// Zones returns every zone, marked for deletion or not.
	Zones(ctx context.Context) ([]ZoneInfo, error)

	// Resources returns resources not marked for deletion.
	Resources(ctx context.Context) ([]ResourceInfo, error)
}

// Snapshotter is implemented by sources that can serve several reads
// from one consistent snapshot.
type Snapshotter interface {
	Snapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

// snapshot runs fn inside src's snapshot when supported.
func snapshot(ctx context.Context, src Source, fn func(ctx context.Context) error) error {
	if s, ok := src.(Snapshotter); ok {
		return s.Snapshot(ctx, fn)
	}
	return fn(ctx)
}
