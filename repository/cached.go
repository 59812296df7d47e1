package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/cache"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
)

// ── Read-through caches for GET by id ────────────────────────────────────────
// Values are stored by copy so callers can mutate what they get back.
// Every mutating call invalidates the entity it touched, and a load that
// overlaps an invalidation is not cached.

type cachedStores struct {
	StoreRepository
	cache *cache.EntityCache[uuid.UUID, models.Store]
}

func NewCachedStoreRepository(inner StoreRepository, ttl time.Duration) StoreRepository {
	return &cachedStores{StoreRepository: inner, cache: cache.New[uuid.UUID, models.Store](ttl)}
}

func (r *cachedStores) GetByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	if s, ok := r.cache.Get(id); ok {
		return &s, nil
	}
	version := r.cache.Version()
	s, err := r.StoreRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.SetIfVersion(id, *s, version)
	return s, nil
}

func (r *cachedStores) Update(ctx context.Context, store *models.Store) error {
	defer r.cache.Invalidate(store.ID)
	return r.StoreRepository.Update(ctx, store)
}

func (r *cachedStores) SetProducts(ctx context.Context, id uuid.UUID, products models.IDList) (*models.Store, error) {
	defer r.cache.Invalidate(id)
	return r.StoreRepository.SetProducts(ctx, id, products)
}

type cachedProducts struct {
	ProductRepository
	cache *cache.EntityCache[uuid.UUID, models.Product]
}

func NewCachedProductRepository(inner ProductRepository, ttl time.Duration) ProductRepository {
	return &cachedProducts{ProductRepository: inner, cache: cache.New[uuid.UUID, models.Product](ttl)}
}

func (r *cachedProducts) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if p, ok := r.cache.Get(id); ok {
		return &p, nil
	}
	version := r.cache.Version()
	p, err := r.ProductRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.SetIfVersion(id, *p, version)
	return p, nil
}

func (r *cachedProducts) UpsertBySource(ctx context.Context, product *models.Product) (*models.Product, error) {
	p, err := r.ProductRepository.UpsertBySource(ctx, product)
	if p != nil {
		r.cache.Invalidate(p.ID)
	}
	return p, err
}

func (r *cachedProducts) UpdateEmotionalAnalysis(ctx context.Context, id uuid.UUID, analysis models.EmotionalAnalysis) (*models.Product, error) {
	defer r.cache.Invalidate(id)
	return r.ProductRepository.UpdateEmotionalAnalysis(ctx, id, analysis)
}

type cachedCampaigns struct {
	CampaignRepository
	cache *cache.EntityCache[uuid.UUID, models.Campaign]
}

func NewCachedCampaignRepository(inner CampaignRepository, ttl time.Duration) CampaignRepository {
	return &cachedCampaigns{CampaignRepository: inner, cache: cache.New[uuid.UUID, models.Campaign](ttl)}
}

func (r *cachedCampaigns) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	if c, ok := r.cache.Get(id); ok {
		c.Variants = cloneVariants(c.Variants)
		return &c, nil
	}
	version := r.cache.Version()
	c, err := r.CampaignRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	snapshot := *c
	snapshot.Variants = cloneVariants(c.Variants)
	r.cache.SetIfVersion(id, snapshot, version)
	return c, nil
}

func (r *cachedCampaigns) Save(ctx context.Context, campaign *models.Campaign) error {
	defer r.cache.Invalidate(campaign.ID)
	return r.CampaignRepository.Save(ctx, campaign)
}

func cloneVariants(in models.VariantList) models.VariantList {
	out := make(models.VariantList, len(in))
	copy(out, in)
	return out
}
