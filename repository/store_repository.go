package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"gorm.io/gorm"
)

const (
	msgStoreNotFound = "Store not found"
	msgDomainInUse   = "Domain already in use"
)

type StoreRepository interface {
	Create(ctx context.Context, store *models.Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
	DomainExists(ctx context.Context, domain string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, store *models.Store) error
	SetProducts(ctx context.Context, id uuid.UUID, products models.IDList) (*models.Store, error)
}

type storeRepo struct {
	db  *gorm.DB
	now Clock
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepo{db: db, now: utcNow}
}

func (r *storeRepo) Create(ctx context.Context, store *models.Store) error {
	store.ApplyDefaults()
	if err := store.Validate(); err != nil {
		return err
	}
	now := r.now()
	store.CreatedAt = now
	store.UpdatedAt = now
	err := r.db.WithContext(ctx).Create(store).Error
	return translate(err, "create store", msgStoreNotFound, msgDomainInUse)
}

func (r *storeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	var store models.Store
	err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "get store", msgStoreNotFound, "")
	}
	return &store, nil
}

func (r *storeRepo) DomainExists(ctx context.Context, domain string, excludeID uuid.UUID) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Store{}).Where("domain = ?", domain)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, translate(err, "check store domain", msgStoreNotFound, "")
	}
	return count > 0, nil
}

func (r *storeRepo) Update(ctx context.Context, store *models.Store) error {
	if err := store.Validate(); err != nil {
		return err
	}
	store.UpdatedAt = r.now()
	res := r.db.WithContext(ctx).Model(&models.Store{}).
		Where("id = ?", store.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(store)
	if res.Error != nil {
		return translate(res.Error, "update store", msgStoreNotFound, msgDomainInUse)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "update store", msgStoreNotFound, "")
	}
	return nil
}

func (r *storeRepo) SetProducts(ctx context.Context, id uuid.UUID, products models.IDList) (*models.Store, error) {
	if products == nil {
		products = models.IDList{}
	}
	res := r.db.WithContext(ctx).Model(&models.Store{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"products":   products,
			"updated_at": r.now(),
		})
	if res.Error != nil {
		return nil, translate(res.Error, "set store products", msgStoreNotFound, "")
	}
	if res.RowsAffected == 0 {
		return nil, translate(gorm.ErrRecordNotFound, "set store products", msgStoreNotFound, "")
	}
	return r.GetByID(ctx, id)
}
