package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"gorm.io/gorm"
)

const msgAlertNotFound = "Alert not found"

type AlertFilter struct {
	StoreID *uuid.UUID
	Type    models.AlertType
	Limit   int
}

type AlertRepository interface {
	// Upsert stores an engine alert. A locally read alert stays read.
	Upsert(ctx context.Context, alert *models.Alert) (*models.Alert, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter AlertFilter) ([]models.Alert, error)
	// MarkRead is idempotent: readAt keeps the value of the first call.
	MarkRead(ctx context.Context, id uuid.UUID) (*models.Alert, error)
}

type alertRepo struct {
	db  *gorm.DB
	now Clock
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepo{db: db, now: utcNow}
}

func (r *alertRepo) Upsert(ctx context.Context, alert *models.Alert) (*models.Alert, error) {
	if err := alert.Validate(); err != nil {
		return nil, err
	}
	var out models.Alert
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Alert
		err := tx.First(&existing, "id = ?", alert.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if alert.Read && alert.ReadAt == nil {
				now := r.now()
				alert.ReadAt = &now
			}
			if alert.CreatedAt.IsZero() {
				alert.CreatedAt = r.now()
			}
			if err := tx.Create(alert).Error; err != nil {
				return err
			}
			out = *alert
			return nil
		}
		if err != nil {
			return err
		}

		merged := *alert
		merged.CreatedAt = existing.CreatedAt
		if existing.Read {
			merged.Read = true
			merged.ReadAt = existing.ReadAt
		} else if merged.Read && merged.ReadAt == nil {
			now := r.now()
			merged.ReadAt = &now
		}
		if err := tx.Save(&merged).Error; err != nil {
			return err
		}
		out = merged
		return nil
	})
	if err != nil {
		return nil, translate(err, "upsert alert", msgAlertNotFound, "")
	}
	return &out, nil
}

func (r *alertRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	var alert models.Alert
	if err := r.db.WithContext(ctx).First(&alert, "id = ?", id).Error; err != nil {
		return nil, translate(err, "get alert", msgAlertNotFound, "")
	}
	return &alert, nil
}

func (r *alertRepo) ListByUser(ctx context.Context, userID uuid.UUID, filter AlertFilter) ([]models.Alert, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.StoreID != nil {
		q = q.Where("store_id = ?", *filter.StoreID)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	alerts := make([]models.Alert, 0)
	if err := q.Order("created_at DESC").Find(&alerts).Error; err != nil {
		return nil, translate(err, "list alerts", msgAlertNotFound, "")
	}
	return alerts, nil
}

func (r *alertRepo) MarkRead(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	var out models.Alert
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, "id = ?", id).Error; err != nil {
			return err
		}
		if !out.MarkRead(r.now()) {
			return nil
		}
		return tx.Model(&models.Alert{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{"read": true, "read_at": out.ReadAt}).Error
	})
	if err != nil {
		return nil, translate(err, "mark alert read", msgAlertNotFound, "")
	}
	return &out, nil
}
