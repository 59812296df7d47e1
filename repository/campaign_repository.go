package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"gorm.io/gorm"
)

const msgCampaignNotFound = "Campaign not found"

type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	// Save validates and writes the full record. Concurrent saves are last write wins.
	Save(ctx context.Context, campaign *models.Campaign) error
}

type campaignRepo struct {
	db  *gorm.DB
	now Clock
}

func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepo{db: db, now: utcNow}
}

func (r *campaignRepo) Create(ctx context.Context, campaign *models.Campaign) error {
	campaign.ApplyDefaults()
	if err := campaign.Validate(); err != nil {
		return err
	}
	now := r.now()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now
	err := r.db.WithContext(ctx).Create(campaign).Error
	return translate(err, "create campaign", msgCampaignNotFound, "Campaign already exists")
}

func (r *campaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.db.WithContext(ctx).First(&campaign, "id = ?", id).Error; err != nil {
		return nil, translate(err, "get campaign", msgCampaignNotFound, "")
	}
	return &campaign, nil
}

func (r *campaignRepo) Save(ctx context.Context, campaign *models.Campaign) error {
	campaign.ApplyDefaults()
	if err := campaign.Validate(); err != nil {
		return err
	}
	campaign.UpdatedAt = r.now()
	res := r.db.WithContext(ctx).Model(&models.Campaign{}).
		Where("id = ?", campaign.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(campaign)
	if res.Error != nil {
		return translate(res.Error, "save campaign", msgCampaignNotFound, "")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "save campaign", msgCampaignNotFound, "")
	}
	return nil
}
