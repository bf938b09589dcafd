package services

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentora/rentora/modules/fleet/domain/aggregates/owner"
	"github.com/rentora/rentora/modules/fleet/infrastructure/persistence"
)

type fakeOwnerRepository struct {
	byName       map[string]*owner.Owner
	getByNameErr error
	createErr    error
	created      []string
	nextID       uint
}

func (f *fakeOwnerRepository) GetAll(_ context.Context) ([]*owner.Owner, error) {
	out := make([]*owner.Owner, 0, len(f.byName))
	for _, o := range f.byName {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOwnerRepository) GetByID(_ context.Context, id uint) (*owner.Owner, error) {
	for _, o := range f.byName {
		if o.ID() == id {
			return o, nil
		}
	}
	return nil, persistence.ErrOwnerNotFound
}

func (f *fakeOwnerRepository) GetByName(_ context.Context, name string) (*owner.Owner, error) {
	if f.getByNameErr != nil {
		return nil, f.getByNameErr
	}
	if o, ok := f.byName[name]; ok {
		return o, nil
	}
	return nil, persistence.ErrOwnerNotFound
}

func (f *fakeOwnerRepository) Create(_ context.Context, data *owner.Owner) (*owner.Owner, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	created := owner.New(data.Name(), owner.WithID(f.nextID))
	if f.byName == nil {
		f.byName = map[string]*owner.Owner{}
	}
	f.byName[data.Name()] = created
	f.created = append(f.created, data.Name())
	return created, nil
}

func TestOwnerService_FindOrCreate_ReusesExisting(t *testing.T) {
	repo := &fakeOwnerRepository{
		byName: map[string]*owner.Owner{
			"محمد العتيبي": owner.New("محمد العتيبي", owner.WithID(42)),
		},
	}
	svc := NewOwnerService(repo)

	id, err := svc.FindOrCreate(context.Background(), "محمد العتيبي")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Empty(t, repo.created, "an existing owner must not be re-created")
}

func TestOwnerService_FindOrCreate_CreatesOnMiss(t *testing.T) {
	repo := &fakeOwnerRepository{}
	svc := NewOwnerService(repo)

	id, err := svc.FindOrCreate(context.Background(), "سالم الدوسري")
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)
	assert.Equal(t, []string{"سالم الدوسري"}, repo.created)

	// A second resolve of the now-persisted name reuses the created id.
	again, err := svc.FindOrCreate(context.Background(), "سالم الدوسري")
	require.NoError(t, err)
	assert.Equal(t, id, again)
	assert.Len(t, repo.created, 1)
}

func TestOwnerService_FindOrCreate_PropagatesLookupError(t *testing.T) {
	repo := &fakeOwnerRepository{getByNameErr: errors.New("connection refused")}
	svc := NewOwnerService(repo)

	_, err := svc.FindOrCreate(context.Background(), "محمد العتيبي")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Empty(t, repo.created, "a lookup failure must not fall through to create")
}

func TestOwnerService_FindOrCreate_PropagatesCreateError(t *testing.T) {
	repo := &fakeOwnerRepository{createErr: errors.New("insert failed")}
	svc := NewOwnerService(repo)

	_, err := svc.FindOrCreate(context.Background(), "محمد العتيبي")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert failed")
}
