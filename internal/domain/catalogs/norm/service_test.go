package norm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capplan/internal/core/apperror"
	"capplan/internal/core/id"
	"capplan/internal/core/types"
	"capplan/internal/domain"
	"capplan/internal/domain/capacity"
)

type fakeTx struct{}

func (fakeTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	norms map[id.ID]*Norm
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{norms: map[id.ID]*Norm{}}
}

func (r *fakeRepo) Create(_ context.Context, n *Norm) error {
	c := *n
	r.norms[n.ID] = &c
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, nid id.ID) (*Norm, error) {
	n, ok := r.norms[nid]
	if !ok {
		return nil, apperror.NewNotFound("norm", nid.String())
	}
	c := *n
	return &c, nil
}

func (r *fakeRepo) Update(_ context.Context, n *Norm) error {
	c := *n
	r.norms[n.ID] = &c
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, nid id.ID) error {
	delete(r.norms, nid)
	return nil
}

func (r *fakeRepo) SetDeletionMark(_ context.Context, nid id.ID, marked bool) error {
	r.norms[nid].DeletionMark = marked
	return nil
}

func (r *fakeRepo) List(_ context.Context, _ domain.ListFilter) (domain.ListResult[*Norm], error) {
	res := domain.ListResult[*Norm]{}
	for _, n := range r.norms {
		res.Items = append(res.Items, n)
	}
	res.TotalCount = int64(len(res.Items))
	return res, nil
}

func (r *fakeRepo) Exists(_ context.Context, nid id.ID) (bool, error) {
	_, ok := r.norms[nid]
	return ok, nil
}

func (r *fakeRepo) FindByKey(_ context.Context, key Key) (*Norm, error) {
	for _, n := range r.norms {
		if n.Key() == key {
			c := *n
			return &c, nil
		}
	}
	return nil, apperror.NewNotFound("norm", key.String())
}

func sampleKey() Key {
	return Key{
		ClientID:        id.New(),
		ProductID:       id.New(),
		OperationType:   capacity.OperationInbound,
		ZoneType:        "receiving",
		ResourceSubtype: "Приёмщик",
		UnitType:        "шт",
	}
}

func TestService_CreateRejectsDuplicateKey(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeTx{})
	ctx := context.Background()
	key := sampleKey()

	original := NewNorm(key, types.MustDecimal("0.05"))
	require.NoError(t, svc.Create(ctx, original))

	dup := NewNorm(key, types.MustDecimal("0.10"))
	err := svc.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeDuplicate))

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPStatus)

	stored, err := svc.GetByID(ctx, original.ID)
	require.NoError(t, err)
	assert.True(t, types.MustDecimal("0.05").Equal(stored.Value))
	assert.Len(t, repo.norms, 1)
}

func TestService_UpdateIntoExistingKeyFails(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeTx{})
	ctx := context.Background()
	key := sampleKey()

	first := NewNorm(key, types.MustDecimal("0.05"))
	require.NoError(t, svc.Create(ctx, first))

	otherKey := key
	otherKey.ResourceSubtype = "Грузчик"
	second := NewNorm(otherKey, types.MustDecimal("0.02"))
	require.NoError(t, svc.Create(ctx, second))

	second.ResourceSubtype = "Приёмщик"
	err := svc.Update(ctx, second)
	assert.True(t, apperror.HasCode(err, apperror.CodeDuplicate))

	stored, err := svc.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Грузчик", stored.ResourceSubtype)
}

func TestService_CreateOverMarkedNormExplainsConflict(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeTx{})
	ctx := context.Background()
	key := sampleKey()

	old := NewNorm(key, types.MustDecimal("0.05"))
	require.NoError(t, svc.Create(ctx, old))
	require.NoError(t, svc.SetDeletionMark(ctx, old.ID, true))

	err := svc.Create(ctx, NewNorm(key, types.MustDecimal("0.08")))
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeConflict))

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPStatus)
	assert.Contains(t, appErr.Message, "marked for deletion")
	assert.Equal(t, old.ID.String(), appErr.Details["existingId"])
	assert.Equal(t, true, appErr.Details["deletionMark"])
	assert.Len(t, repo.norms, 1)

	// после снятия пометки норму можно править
	require.NoError(t, svc.SetDeletionMark(ctx, old.ID, false))
	stored, err := svc.GetByID(ctx, old.ID)
	require.NoError(t, err)
	stored.Value = types.MustDecimal("0.08")
	require.NoError(t, svc.Update(ctx, stored))
}

func TestService_CreateAfterPhysicalDeleteFreesKey(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeTx{})
	ctx := context.Background()
	key := sampleKey()

	old := NewNorm(key, types.MustDecimal("0.05"))
	require.NoError(t, svc.Create(ctx, old))
	require.NoError(t, svc.Delete(ctx, old.ID))

	require.NoError(t, svc.Create(ctx, NewNorm(key, types.MustDecimal("0.08"))))
}

func TestService_UpdateOwnKeyIsAllowed(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeTx{})
	ctx := context.Background()

	n := NewNorm(sampleKey(), types.MustDecimal("0.05"))
	require.NoError(t, svc.Create(ctx, n))

	n.Value = types.MustDecimal("0.07")
	require.NoError(t, svc.Update(ctx, n))
}

func TestNorm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(n *Norm)
		wantErr bool
	}{
		{name: "valid", mutate: func(n *Norm) {}},
		{name: "zero value", mutate: func(n *Norm) { n.Value = types.MustDecimal("0") }, wantErr: true},
		{name: "negative value", mutate: func(n *Norm) { n.Value = types.MustDecimal("-1") }, wantErr: true},
		{name: "unknown operation", mutate: func(n *Norm) { n.OperationType = "picking" }, wantErr: true},
		{name: "missing zone type", mutate: func(n *Norm) { n.ZoneType = "  " }, wantErr: true},
		{name: "missing subtype", mutate: func(n *Norm) { n.ResourceSubtype = "" }, wantErr: true},
		{name: "missing client", mutate: func(n *Norm) { n.ClientID = id.Nil() }, wantErr: true},
		{name: "empty unit defaults", mutate: func(n *Norm) { n.UnitType = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNorm(sampleKey(), types.MustDecimal("0.05"))
			tt.mutate(n)
			err := n.Validate(context.Background())
			if tt.wantErr {
				assert.True(t, apperror.HasCode(err, apperror.CodeValidation), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, n.UnitType)
		})
	}
}
