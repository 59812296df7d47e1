package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"gorm.io/gorm"
)

type AlertType string

const (
	AlertTypeInfo    AlertType = "info"
	AlertTypeSuccess AlertType = "success"
	AlertTypeWarning AlertType = "warning"
	AlertTypeError   AlertType = "error"
)

func (t AlertType) Valid() bool {
	switch t {
	case AlertTypeInfo, AlertTypeSuccess, AlertTypeWarning, AlertTypeError:
		return true
	}
	return false
}

type AlertCategory string

const (
	AlertCategoryPerformance AlertCategory = "performance"
	AlertCategorySystem      AlertCategory = "system"
	AlertCategoryProduct     AlertCategory = "product"
	AlertCategoryCampaign    AlertCategory = "campaign"
	AlertCategoryOrder       AlertCategory = "order"
	AlertCategoryPayment     AlertCategory = "payment"
)

func (c AlertCategory) Valid() bool {
	switch c {
	case AlertCategoryPerformance, AlertCategorySystem, AlertCategoryProduct,
		AlertCategoryCampaign, AlertCategoryOrder, AlertCategoryPayment:
		return true
	}
	return false
}

type Alert struct {
	ID             uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID     `json:"userId" gorm:"type:uuid;not null;index:idx_alerts_user"`
	StoreID        *uuid.UUID    `json:"storeId,omitempty" gorm:"type:uuid;index:idx_alerts_store"`
	CampaignID     *uuid.UUID    `json:"campaignId,omitempty" gorm:"type:uuid"`
	ProductID      *uuid.UUID    `json:"productId,omitempty" gorm:"type:uuid"`
	Type           AlertType     `json:"type" gorm:"not null;index:idx_alerts_type"`
	Category       AlertCategory `json:"category" gorm:"not null;index:idx_alerts_category"`
	Title          string        `json:"title" gorm:"not null"`
	Message        string        `json:"message" gorm:"not null"`
	ActionRequired bool          `json:"actionRequired" gorm:"default:false"`
	ActionURL      string        `json:"actionUrl,omitempty"`
	Read           bool          `json:"read" gorm:"default:false;index:idx_alerts_read"`
	ReadAt         *time.Time    `json:"readAt,omitempty"`
	CreatedAt      time.Time     `json:"createdAt" gorm:"autoCreateTime;index:idx_alerts_created,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (a *Alert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Alert) TableName() string {
	return "alerts"
}

func (a *Alert) Validate() error {
	switch {
	case a.UserID == uuid.Nil:
		return apperr.Validation("Alert user ID is required")
	case !a.Type.Valid():
		return apperr.Validationf("Invalid alert type: %q", a.Type)
	case !a.Category.Valid():
		return apperr.Validationf("Invalid alert category: %q", a.Category)
	case strings.TrimSpace(a.Title) == "":
		return apperr.Validation("Alert title is required")
	case strings.TrimSpace(a.Message) == "":
		return apperr.Validation("Alert message is required")
	}
	return nil
}

// MarkRead flips the alert to read once; later calls keep the first readAt.
func (a *Alert) MarkRead(now time.Time) bool {
	if a.Read {
		if a.ReadAt == nil {
			a.ReadAt = &now
			return true
		}
		return false
	}
	a.Read = true
	a.ReadAt = &now
	return true
}
