// Package memory provides an in-memory capacity.Source for tests and demos.
package memory

import (
	"context"
	"sync"

	"capplan/internal/domain/capacity"
)

// Source holds capacity input in memory. Safe for concurrent use.
type Source struct {
	mu           sync.RWMutex
	inbound      []capacity.DemandLine
	outbound     []capacity.DemandLine
	norms        []capacity.NormEntry
	availability []capacity.AvailabilityEntry
	zones        []capacity.ZoneInfo
	resources    []capacity.ResourceInfo

	// Err, when set, is returned by every read.
	Err error
}

var _ capacity.Source = (*Source)(nil)

// NewSource creates an empty source.
func NewSource() *Source {
	return &Source{}
}

// AddZone registers a zone.
func (s *Source) AddZone(z capacity.ZoneInfo) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.zones = append(s.zones, z)
	return s
}

// AddResource registers a resource.
func (s *Source) AddResource(r capacity.ResourceInfo) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources = append(s.resources, r)
	return s
}

// AddNorm registers a norm.
func (s *Source) AddNorm(n capacity.NormEntry) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.norms = append(s.norms, n)
	return s
}

// AddLine registers a demand line in the ledger matching its operation.
func (s *Source) AddLine(l capacity.DemandLine) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l.Operation == capacity.OperationOutbound {
		s.outbound = append(s.outbound, l)
	} else {
		l.Operation = capacity.OperationInbound
		s.inbound = append(s.inbound, l)
	}
	return s
}

// AddAvailability registers an availability record.
func (s *Source) AddAvailability(a capacity.AvailabilityEntry) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.availability = append(s.availability, a)
	return s
}

// ValidatedInbound returns validated inbound lines inside r.
func (s *Source) ValidatedInbound(_ context.Context, r capacity.DateRange) ([]capacity.DemandLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return filterLines(s.inbound, r), nil
}

// ValidatedOutbound returns validated outbound entries inside r.
func (s *Source) ValidatedOutbound(_ context.Context, r capacity.DateRange) ([]capacity.DemandLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return filterLines(s.outbound, r), nil
}

// Norms returns a copy of all norms.
func (s *Source) Norms(_ context.Context) ([]capacity.NormEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]capacity.NormEntry(nil), s.norms...), nil
}

// Availability returns availability records inside r.
func (s *Source) Availability(_ context.Context, r capacity.DateRange) ([]capacity.AvailabilityEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]capacity.AvailabilityEntry, 0, len(s.availability))
	for _, a := range s.availability {
		if r.Contains(a.Date) {
			out = append(out, a)
		}
	}
	return out, nil
}

// Zones returns a copy of all zones.
func (s *Source) Zones(_ context.Context) ([]capacity.ZoneInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]capacity.ZoneInfo(nil), s.zones...), nil
}

// Resources returns a copy of all resources.
func (s *Source) Resources(_ context.Context) ([]capacity.ResourceInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]capacity.ResourceInfo(nil), s.resources...), nil
}

// filterLines keeps validated lines inside r. Unvalidated lines are kept out
// the same way the SQL source filters them.
func filterLines(lines []capacity.DemandLine, r capacity.DateRange) []capacity.DemandLine {
	out := make([]capacity.DemandLine, 0, len(lines))
	for _, l := range lines {
		if l.Validated && r.Contains(l.Date) {
			out = append(out, l)
		}
	}
	return out
}
