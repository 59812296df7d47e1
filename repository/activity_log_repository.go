package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"gorm.io/gorm"
)

type ActivityLogRepository interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
	ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.ActivityLog, int64, error)
}

type activityLogRepo struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepo{db: db}
}

func (r *activityLogRepo) Create(ctx context.Context, entry *models.ActivityLog) error {
	return translate(r.db.WithContext(ctx).Create(entry).Error, "create activity log", "Activity log not found", "")
}

func (r *activityLogRepo) ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.ActivityLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	q := r.db.WithContext(ctx).Model(&models.ActivityLog{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "count activity logs", "", "")
	}

	logs := make([]models.ActivityLog, 0, limit)
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, translate(err, "list activity logs", "", "")
	}
	return logs, total, nil
}
