package reports_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capplan/internal/core/apperror"
	"capplan/internal/core/id"
	"capplan/internal/core/types"
	"capplan/internal/domain/capacity"
	"capplan/internal/domain/reports"
	"capplan/internal/infrastructure/storage/memory"
)

var (
	clientID  = id.New()
	productID = id.New()
	zoneID    = id.New()
	worker    = id.New()
)

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

type fakeRepo struct {
	load []reports.LoadItem
	caps []reports.CapacityItem
	err  error
}

func (r *fakeRepo) LoadItems(context.Context, capacity.DateRange) ([]reports.LoadItem, error) {
	return r.load, r.err
}

func (r *fakeRepo) CapacityItems(context.Context, capacity.DateRange) ([]reports.CapacityItem, error) {
	return r.caps, r.err
}

func source() *memory.Source {
	src := memory.NewSource()
	src.AddZone(capacity.ZoneInfo{ID: zoneID, Name: "Приёмка", Type: "receiving"}).
		AddResource(capacity.ResourceInfo{ID: worker, Kind: capacity.KindStaff, Subtype: "Приёмщик", ZoneID: &zoneID}).
		AddNorm(capacity.NormEntry{
			ClientID: clientID, ProductID: productID, Operation: capacity.OperationInbound,
			ZoneType: "receiving", ResourceSubtype: "Приёмщик", UnitType: "шт", Value: types.MustDecimal("0.05"),
		}).
		AddAvailability(capacity.AvailabilityEntry{ResourceID: worker, Date: day(3), Hours: types.MustDecimal("3")})

	for _, doc := range []string{"IN-2", "IN-1"} {
		src.AddLine(capacity.DemandLine{
			ClientID: clientID, ProductID: productID, ZoneID: zoneID, Quantity: types.MustDecimal("50"),
			UnitType: "шт", DocumentNumber: doc, Date: day(3), Validated: true,
		})
	}
	return src
}

func newService(repo reports.Repository) *reports.Service {
	return reports.NewService(repo, capacity.NewService(source(), nil))
}

func TestGenerate_Balance(t *testing.T) {
	rep, err := newService(&fakeRepo{}).Generate(context.Background(), reports.TypeBalance, capacity.DateRange{})
	require.NoError(t, err)

	assert.Equal(t, "Отчёт по балансу мощностей", rep.Title)
	assert.Equal(t, []string{"Дата", "Зона", "Ресурс", "Требуемо, ч", "Доступно, ч", "Баланс, ч"}, rep.Columns)
	require.Len(t, rep.Rows, 1)

	row := rep.Rows[0]
	assert.Equal(t, day(3), row[0])
	assert.Equal(t, "Приёмка", row[1])
	assert.Equal(t, "5", row[3].(types.Hours).String())
	assert.Equal(t, "-2", row[5].(types.Hours).String())
}

func TestGenerate_RequirementOrderedByDocument(t *testing.T) {
	rep, err := newService(&fakeRepo{}).Generate(context.Background(), reports.TypeRequirement, capacity.DateRange{})
	require.NoError(t, err)

	require.Len(t, rep.Rows, 2)
	assert.Equal(t, "IN-1", rep.Rows[0][1])
	assert.Equal(t, "IN-2", rep.Rows[1][1])
	assert.Equal(t, "2.5", rep.Rows[0][4].(types.Quantity).String())
}

func TestGenerate_LoadAndCapacityRound(t *testing.T) {
	repo := &fakeRepo{
		load: []reports.LoadItem{{Date: day(1), DocumentNumber: "IN-1", ClientName: "ООО Альфа", ProductName: "Коробка", Quantity: types.MustDecimal("1.23456"), UnitType: "шт"}},
		caps: []reports.CapacityItem{{Date: day(1), ResourceName: "Иванов", ResourceSubtype: "Приёмщик", Hours: types.MustDecimal("7.999")}},
	}
	svc := newService(repo)

	load, err := svc.Generate(context.Background(), reports.TypeLoad, capacity.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, "1.23", load.Rows[0][4].(types.Quantity).String())
	assert.Len(t, load.Rows[0], len(load.Columns))

	caps, err := svc.Generate(context.Background(), reports.TypeCapacity, capacity.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, "8", caps.Rows[0][3].(types.Hours).String())
	assert.Equal(t, "Отчёт доступность за период", caps.Title)
}

func TestGenerate_RepositoryError(t *testing.T) {
	boom := errors.New("db down")
	_, err := newService(&fakeRepo{err: boom}).Generate(context.Background(), reports.TypeLoad, capacity.DateRange{})
	assert.ErrorIs(t, err, boom)
}

func TestParseType(t *testing.T) {
	for _, typ := range reports.Types {
		got, err := reports.ParseType(string(typ))
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	_, err := reports.ParseType("pdf")
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}

func TestFileNames(t *testing.T) {
	start := day(1)
	r := capacity.DateRange{Start: &start}

	assert.Equal(t, "report_balance_2024-06-01_all.csv", reports.FileName(reports.TypeBalance, r, "csv"))
	assert.Equal(t, "recommendations_all_all.xlsx", reports.RecommendationsFileName(capacity.DateRange{}, "xlsx"))
}

func TestRecommendationRows(t *testing.T) {
	rows := reports.RecommendationRows([]capacity.Recommendation{{
		Date: day(3), ZoneName: "Приёмка", ResourceSubtype: "Приёмщик", Balance: types.MustDecimal("-2"),
		Category: capacity.CategoryDeficit, Kind: capacity.KindStaff, Message: capacity.MsgStaffModerateDeficit,
	}})

	require.Len(t, rows, 1)
	assert.Len(t, rows[0], len(reports.RecommendationColumns))
	assert.Equal(t, "Deficit", rows[0][4])
}
