package capacity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capplan/internal/domain/capacity"
)

func newService(src capacity.Source) *capacity.Service {
	return capacity.NewService(src, nil)
}

func TestEngine_BalanceIsAvailableMinusRequired(t *testing.T) {
	src := baseSource().
		AddLine(inboundLine("IN-1", "2024-03-01", "100")).
		AddAvailability(receiverHours("2024-03-01", "3"))

	rows, err := newService(src).ComputeBalance(context.Background(), allDates())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, zoneA, row.ZoneID)
	assert.Equal(t, "Приёмщик", row.ResourceSubtype)
	assert.True(t, dec("5").Equal(row.RequiredHours))
	assert.True(t, dec("3").Equal(row.AvailableHours))
	assert.True(t, dec("-2").Equal(row.Balance))
}

func TestEngine_FullOuterJoin(t *testing.T) {
	src := baseSource().
		// requirement only: 2024-03-01, zone A
		AddLine(inboundLine("IN-1", "2024-03-01", "100")).
		// availability only: 2024-03-02, zone A and zone B
		AddAvailability(receiverHours("2024-03-02", "8")).
		AddAvailability(capacity.AvailabilityEntry{ResourceID: reachTruck, Date: day("2024-03-02"), Hours: dec("6")})

	rows, err := newService(src).ComputeBalance(context.Background(), allDates())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, day("2024-03-01"), rows[0].Date)
	assert.True(t, rows[0].AvailableHours.IsZero())
	assert.True(t, dec("-5").Equal(rows[0].Balance))

	assert.Equal(t, day("2024-03-02"), rows[1].Date)
	assert.Equal(t, "Зона A", rows[1].ZoneName)
	assert.True(t, rows[1].RequiredHours.IsZero())
	assert.True(t, dec("8").Equal(rows[1].Balance))

	assert.Equal(t, "Зона B", rows[2].ZoneName)
	assert.Equal(t, "Ричтрак", rows[2].ResourceSubtype)
	assert.True(t, dec("6").Equal(rows[2].Balance))
}

func TestEngine_SumsAvailabilityPerSubtypeAndZone(t *testing.T) {
	second := receiver
	second[15] = 0xff
	src := baseSource().
		AddResource(capacity.ResourceInfo{ID: second, Kind: capacity.KindStaff, Subtype: "Приёмщик", Name: "Сидоров", ZoneID: &zoneA}).
		AddAvailability(receiverHours("2024-03-01", "4")).
		AddAvailability(capacity.AvailabilityEntry{ResourceID: second, Date: day("2024-03-01"), Hours: dec("3.5")})

	rows, err := newService(src).ComputeBalance(context.Background(), allDates())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, dec("7.5").Equal(rows[0].AvailableHours))
}

func TestEngine_SkipsResourcesWithoutZone(t *testing.T) {
	src := baseSource().
		AddAvailability(capacity.AvailabilityEntry{ResourceID: floating, Date: day("2024-03-01"), Hours: dec("8")})

	rows, err := newService(src).ComputeBalance(context.Background(), allDates())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestEngine_SkipsAvailabilityOfUnlistedResource(t *testing.T) {
	// ресурс с пометкой удаления источник не возвращает
	marked := receiver
	marked[15] = 0xee
	src := baseSource().
		AddAvailability(receiverHours("2024-03-01", "4")).
		AddAvailability(capacity.AvailabilityEntry{ResourceID: marked, Date: day("2024-03-01"), Hours: dec("8")})

	rows, err := newService(src).ComputeBalance(context.Background(), allDates())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, dec("4").Equal(rows[0].AvailableHours))
}

func TestEngine_AppliesDateRangeToAvailability(t *testing.T) {
	src := baseSource().
		AddAvailability(receiverHours("2024-03-01", "8")).
		AddAvailability(receiverHours("2024-03-05", "8"))

	rows, err := newService(src).ComputeBalance(context.Background(), mustRange(t, "2024-03-02", ""))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, day("2024-03-05"), rows[0].Date)
}

func TestEngine_Idempotent(t *testing.T) {
	lineB := inboundLine("IN-2", "2024-03-01", "40")
	lineB.ZoneID = zoneB
	src := baseSource().
		AddLine(inboundLine("IN-1", "2024-03-01", "100")).
		AddLine(lineB).
		AddLine(inboundLine("IN-3", "2024-03-02", "60")).
		AddAvailability(receiverHours("2024-03-01", "3")).
		AddAvailability(receiverHours("2024-03-03", "7")).
		AddAvailability(capacity.AvailabilityEntry{ResourceID: reachTruck, Date: day("2024-03-01"), Hours: dec("2")})

	svc := newService(src)
	first, err := svc.ComputeBalance(context.Background(), allDates())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := svc.ComputeBalance(context.Background(), allDates())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestService_RecordsComputation(t *testing.T) {
	m := newGapCounter()
	svc := capacity.NewService(baseSource(), m)

	_, err := svc.ComputeRequirements(context.Background(), allDates())
	require.NoError(t, err)
	_, err = svc.ComputeRecommendations(context.Background(), allDates())
	require.NoError(t, err)

	assert.Equal(t, []string{capacity.OpRequirements, capacity.OpRecommendations}, m.ops)
}

func TestService_WrapsSourceError(t *testing.T) {
	src := baseSource()
	src.Err = assert.AnError

	_, err := newService(src).ComputeBalance(context.Background(), allDates())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "compute balance")
}
