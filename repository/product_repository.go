package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"gorm.io/gorm"
)

const (
	msgProductNotFound = "Product not found"
	msgProductExists   = "Product already exists"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	// UpsertBySource inserts or refreshes a product keyed by (source.platform, source.externalId).
	UpsertBySource(ctx context.Context, product *models.Product) (*models.Product, error)
	UpdateEmotionalAnalysis(ctx context.Context, id uuid.UUID, analysis models.EmotionalAnalysis) (*models.Product, error)
}

type productRepo struct {
	db  *gorm.DB
	now Clock
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db, now: utcNow}
}

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	product.ApplyDefaults()
	if err := product.Validate(); err != nil {
		return err
	}
	now := r.now()
	product.CreatedAt = now
	product.UpdatedAt = now
	err := r.db.WithContext(ctx).Create(product).Error
	return translate(err, "create product", msgProductNotFound, msgProductExists)
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err, "get product", msgProductNotFound, "")
	}
	return &product, nil
}

func (r *productRepo) UpsertBySource(ctx context.Context, product *models.Product) (*models.Product, error) {
	product.ApplyDefaults()
	if err := product.Validate(); err != nil {
		return nil, err
	}
	now := r.now()
	var out models.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		err := tx.Where("source_platform = ? AND source_external_id = ?",
			product.Source.Platform, product.Source.ExternalID).
			First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			product.ID = uuid.Nil
			product.CreatedAt = now
			product.UpdatedAt = now
			if err := tx.Create(product).Error; err != nil {
				return err
			}
			out = *product
			return nil
		case err != nil:
			return err
		}

		existing.Title = product.Title
		existing.Description = product.Description
		existing.Price = product.Price
		existing.Images = product.Images
		existing.Category = product.Category
		existing.Source.URL = product.Source.URL
		existing.Performance = product.Performance
		if product.EmotionalAnalysis.PrimaryEmotion != "" {
			existing.EmotionalAnalysis = product.EmotionalAnalysis
		}
		existing.UpdatedAt = now
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		out = existing
		return nil
	})
	if err != nil {
		return nil, translate(err, "upsert product", msgProductNotFound, msgProductExists)
	}
	return &out, nil
}

func (r *productRepo) UpdateEmotionalAnalysis(ctx context.Context, id uuid.UUID, analysis models.EmotionalAnalysis) (*models.Product, error) {
	if analysis.EmotionalSpectrum == nil {
		analysis.EmotionalSpectrum = models.StringList{}
	}
	if analysis.BuyerPersonas == nil {
		analysis.BuyerPersonas = models.PersonaList{}
	}
	res := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"emotional_primary_emotion":    analysis.PrimaryEmotion,
			"emotional_emotional_spectrum": analysis.EmotionalSpectrum,
			"emotional_buyer_personas":     analysis.BuyerPersonas,
			"updated_at":                   r.now(),
		})
	if res.Error != nil {
		return nil, translate(res.Error, "update product analysis", msgProductNotFound, "")
	}
	if res.RowsAffected == 0 {
		return nil, translate(gorm.ErrRecordNotFound, "update product analysis", msgProductNotFound, "")
	}
	return r.GetByID(ctx, id)
}
