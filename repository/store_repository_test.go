package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/repository"
	"github.com/jarradburge/optivana-vanthex-monorepo/repository/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRepositoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewStoreRepository(testutil.DB(t))

	store := newStore("lamps.example.com")
	require.NoError(t, repo.Create(ctx, store))
	require.NotEqual(t, uuid.Nil, store.ID)

	got, err := repo.GetByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, "Demo", got.Name)
	assert.Equal(t, models.StoreStatusDraft, got.Status)
	assert.Equal(t, models.StoreModeAutonomous, got.Mode)
	assert.Equal(t, "default", got.Settings.Theme)
	assert.Empty(t, got.Products)
	assert.Zero(t, got.Performance)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestStoreRepositoryDuplicateDomain(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := repository.NewStoreRepository(db)

	require.NoError(t, repo.Create(ctx, newStore("dup.example.com")))

	err := repo.Create(ctx, newStore("dup.example.com"))
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.Equal(t, "Domain already in use", apperr.Message(err))

	var count int64
	require.NoError(t, db.Model(&models.Store{}).Where("domain = ?", "dup.example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	exists, err := repo.DomainExists(ctx, "dup.example.com", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStoreRepositoryGetMissing(t *testing.T) {
	repo := repository.NewStoreRepository(testutil.DB(t))
	_, err := repo.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.Equal(t, "Store not found", apperr.Message(err))
}

func TestStoreRepositoryUpdateAndSetProducts(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewStoreRepository(testutil.DB(t))

	store := newStore("update.example.com")
	require.NoError(t, repo.Create(ctx, store))
	created := store.UpdatedAt

	store.Status = models.StoreStatusActive
	store.Settings.Integrations["shopify"] = "connected"
	require.NoError(t, repo.Update(ctx, store))

	got, err := repo.GetByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StoreStatusActive, got.Status)
	assert.Equal(t, "connected", got.Settings.Integrations["shopify"])
	assert.False(t, got.UpdatedAt.Before(created))

	p1, p2 := uuid.New(), uuid.New()
	got, err = repo.SetProducts(ctx, store.ID, models.IDList{p1, p2})
	require.NoError(t, err)
	assert.Equal(t, models.IDList{p1, p2}, got.Products)

	_, err = repo.SetProducts(ctx, uuid.New(), models.IDList{p1})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestStoreRepositoryUpdateDomainCollision(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewStoreRepository(testutil.DB(t))

	require.NoError(t, repo.Create(ctx, newStore("a.example.com")))
	b := newStore("b.example.com")
	require.NoError(t, repo.Create(ctx, b))

	b.Domain = "a.example.com"
	err := repo.Update(ctx, b)
	require.Error(t, err)
	assert.Equal(t, "Domain already in use", apperr.Message(err))
}

func TestCachedStoreRepositoryInvalidatesOnUpdate(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCachedStoreRepository(repository.NewStoreRepository(testutil.DB(t)), 0)

	store := newStore("cache.example.com")
	require.NoError(t, repo.Create(ctx, store))

	first, err := repo.GetByID(ctx, store.ID)
	require.NoError(t, err)
	first.Name = "mutated by caller"

	again, err := repo.GetByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, "Demo", again.Name)

	again.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, again))

	fresh, err := repo.GetByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", fresh.Name)
}

// racingStores lets a write land between the database read and the cache fill.
type racingStores struct {
	repository.StoreRepository
	afterRead func()
}

func (r *racingStores) GetByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	s, err := r.StoreRepository.GetByID(ctx, id)
	if r.afterRead != nil {
		hook := r.afterRead
		r.afterRead = nil
		hook()
	}
	return s, err
}

func TestCachedStoreRepositoryDoesNotCacheRacedRead(t *testing.T) {
	ctx := context.Background()
	inner := &racingStores{StoreRepository: repository.NewStoreRepository(testutil.DB(t))}
	repo := repository.NewCachedStoreRepository(inner, 0)

	store := newStore("race.example.com")
	require.NoError(t, repo.Create(ctx, store))

	inner.afterRead = func() {
		renamed := *store
		renamed.Name = "Renamed"
		require.NoError(t, repo.Update(ctx, &renamed))
	}

	stale, err := repo.GetByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, "Demo", stale.Name)

	fresh, err := repo.GetByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", fresh.Name)
}
