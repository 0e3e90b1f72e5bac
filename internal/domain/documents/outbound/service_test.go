package outbound

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capplan/internal/core/apperror"
	"capplan/internal/core/id"
	"capplan/internal/core/types"
	"capplan/internal/domain"
	"capplan/internal/domain/audit"
)

type fakeTx struct{}

func (fakeTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	entries map[id.ID]*PlanEntry
}

func (r *fakeRepo) Create(_ context.Context, e *PlanEntry) error {
	c := *e
	r.entries[e.ID] = &c
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, entryID id.ID) (*PlanEntry, error) {
	e, ok := r.entries[entryID]
	if !ok {
		return nil, apperror.NewNotFound("outbound plan", entryID.String())
	}
	c := *e
	return &c, nil
}

func (r *fakeRepo) Update(ctx context.Context, e *PlanEntry) error {
	return r.Create(ctx, e)
}

func (r *fakeRepo) Delete(_ context.Context, entryID id.ID) error {
	delete(r.entries, entryID)
	return nil
}

func (r *fakeRepo) List(context.Context, ListFilter) (domain.ListResult[*PlanEntry], error) {
	return domain.ListResult[*PlanEntry]{}, nil
}

type actionLog []audit.Action

func (l *actionLog) LogChange(_ context.Context, _ string, _ id.ID, action audit.Action, _ map[string]any) error {
	*l = append(*l, action)
	return nil
}

func newEntry(qty string) *PlanEntry {
	return NewPlanEntry(id.New(), id.New(), id.New(),
		time.Date(2024, 6, 4, 9, 0, 0, 0, time.UTC), types.MustDecimal(qty))
}

func TestPlanEntry_DocumentNumber(t *testing.T) {
	e := newEntry("1")
	assert.Equal(t, e.ID.String(), e.DocumentNumber())

	e.Reference = "PLAN-7"
	assert.Equal(t, "PLAN-7", e.DocumentNumber())
}

func TestPlanEntry_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *PlanEntry)
		field  string
	}{
		{"zero quantity", func(e *PlanEntry) { e.Quantity = types.MustDecimal("0") }, "quantity"},
		{"negative quantity", func(e *PlanEntry) { e.Quantity = types.MustDecimal("-1") }, "quantity"},
		{"missing sku", func(e *PlanEntry) { e.ProductID = id.Nil() }, "skuId"},
		{"missing zone", func(e *PlanEntry) { e.ZoneID = id.Nil() }, "zoneId"},
		{"missing client", func(e *PlanEntry) { e.ClientID = id.Nil() }, "clientId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEntry("5")
			tt.mutate(e)

			err := e.Validate(context.Background())
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, appErr.Details["field"])
		})
	}
}

func TestPlanEntry_ValidateDefaultsUnit(t *testing.T) {
	e := newEntry("5")
	e.UnitType = " "
	e.Reference = " P-1 "

	require.NoError(t, e.Validate(context.Background()))
	assert.Equal(t, types.DefaultUnitType, e.UnitType)
	assert.Equal(t, "P-1", e.Reference)
}

func TestService_Lifecycle(t *testing.T) {
	repo := &fakeRepo{entries: map[id.ID]*PlanEntry{}}
	log := &actionLog{}
	svc := NewService(repo, fakeTx{}, log)
	ctx := context.Background()

	e := newEntry("12")
	require.NoError(t, svc.Create(ctx, e))

	validated, err := svc.Validate(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, validated.Validated)

	_, err = svc.Validate(ctx, e.ID)
	require.NoError(t, err)

	validated.Quantity = types.MustDecimal("15")
	require.NoError(t, svc.Update(ctx, validated))

	got, err := svc.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, got.Validated, "edits keep the validated flag")
	assert.Equal(t, "15", got.Quantity.String())

	require.NoError(t, svc.Delete(ctx, e.ID))
	_, err = svc.GetByID(ctx, e.ID)
	assert.True(t, apperror.IsNotFound(err))

	assert.Equal(t, actionLog{
		audit.ActionCreate, audit.ActionValidate, audit.ActionUpdate, audit.ActionDelete,
	}, *log)
}
