package capacity_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"capplan/internal/core/types"
	"capplan/internal/domain/capacity"
	"capplan/internal/infrastructure/storage/memory"
)

var (
	clientID   = uuid.MustParse("01900000-0000-7000-8000-000000000001")
	productID  = uuid.MustParse("01900000-0000-7000-8000-000000000002")
	zoneA      = uuid.MustParse("01900000-0000-7000-8000-00000000000a")
	zoneB      = uuid.MustParse("01900000-0000-7000-8000-00000000000b")
	receiver   = uuid.MustParse("01900000-0000-7000-8000-000000000101")
	reachTruck = uuid.MustParse("01900000-0000-7000-8000-000000000102")
	floating   = uuid.MustParse("01900000-0000-7000-8000-000000000103")
)

func day(s string) time.Time {
	t, err := time.Parse(capacity.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) types.Hours {
	return types.MustDecimal(s)
}

// baseSource is one client, one product and two zones with a receiver
// placed in zone A and a reach truck in zone B.
func baseSource() *memory.Source {
	src := memory.NewSource()
	src.AddZone(capacity.ZoneInfo{ID: zoneA, Name: "Зона A", Type: "receiving"}).
		AddZone(capacity.ZoneInfo{ID: zoneB, Name: "Зона B", Type: "storage"}).
		AddResource(capacity.ResourceInfo{ID: receiver, Kind: capacity.KindStaff, Subtype: "Приёмщик", Name: "Иванов", ZoneID: &zoneA}).
		AddResource(capacity.ResourceInfo{ID: reachTruck, Kind: capacity.KindEquipment, Subtype: "Ричтрак", Name: "RT-1", ZoneID: &zoneB}).
		AddResource(capacity.ResourceInfo{ID: floating, Kind: capacity.KindStaff, Subtype: "Приёмщик", Name: "Петров"}).
		AddNorm(capacity.NormEntry{
			ClientID:        clientID,
			ProductID:       productID,
			Operation:       capacity.OperationInbound,
			ZoneType:        "receiving",
			ResourceSubtype: "Приёмщик",
			UnitType:        "шт",
			Value:           dec("0.05"),
		})
	return src
}

func inboundLine(doc, date, qty string) capacity.DemandLine {
	return capacity.DemandLine{
		Operation:      capacity.OperationInbound,
		ClientID:       clientID,
		ProductID:      productID,
		ZoneID:         zoneA,
		Quantity:       dec(qty),
		UnitType:       "шт",
		DocumentNumber: doc,
		Date:           day(date),
		Validated:      true,
	}
}

func receiverHours(date, hours string) capacity.AvailabilityEntry {
	return capacity.AvailabilityEntry{ResourceID: receiver, Date: day(date), Hours: dec(hours)}
}

func allDates() capacity.DateRange {
	return capacity.DateRange{}
}

// draftSource passes draft lines through, so the calculator's own
// validation check is observable.
type draftSource struct {
	*memory.Source
	drafts []capacity.DemandLine
}

func (s *draftSource) ValidatedInbound(ctx context.Context, r capacity.DateRange) ([]capacity.DemandLine, error) {
	lines, err := s.Source.ValidatedInbound(ctx, r)
	if err != nil {
		return nil, err
	}
	return append(lines, s.drafts...), nil
}

// gapCounter records gap reasons for assertions.
type gapCounter struct {
	mu   sync.Mutex
	gaps map[string]int
	ops  []string
}

func newGapCounter() *gapCounter {
	return &gapCounter{gaps: map[string]int{}}
}

func (g *gapCounter) RecordGap(reason string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gaps[reason]++
}

func (g *gapCounter) ObserveComputation(op string, _ time.Duration, _ int, _ error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ops = append(g.ops, op)
}

func mustRange(t *testing.T, start, end string) capacity.DateRange {
	t.Helper()
	r, err := capacity.ParseDateRange(start, end)
	require.NoError(t, err)
	return r
}
