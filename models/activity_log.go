package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLog records a mutating API call made by a user.
type ActivityLog struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `json:"userId" gorm:"type:uuid;not null;index:idx_activity_user_date,priority:1"`
	UserEmail    string    `json:"userEmail"`
	Action       string    `json:"action" gorm:"not null;index"`                                             // launched_campaign, updated_store, ...
	ResourceType string    `json:"resourceType" gorm:"not null;index:idx_activity_resource_date,priority:1"` // store, product, campaign, alert
	ResourceID   string    `json:"resourceId" gorm:"index"`
	Method       string    `json:"method"`
	Path         string    `json:"path"`
	StatusCode   int       `json:"statusCode"`
	Status       string    `json:"status" gorm:"not null"` // success, failed
	ErrorMessage string    `json:"errorMessage,omitempty"`
	IPAddress    string    `json:"ipAddress"`
	UserAgent    string    `json:"userAgent"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime;index:idx_activity_user_date,priority:2,sort:desc;index:idx_activity_resource_date,priority:2,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	if al.Status == "" {
		al.Status = StatusSuccess
	}
	return nil
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

// ════════════════════════════════════════════════════════════
// Action Constants
// ════════════════════════════════════════════════════════════

const (
	// Store Actions
	ActionInitiateStore       = "initiated_store"
	ActionUpdateStore         = "updated_store"
	ActionAddStoreProducts    = "added_store_products"
	ActionRemoveStoreProduct  = "removed_store_product"
	ActionRerouteStoreProduct = "rerouted_store_product"

	// Product Actions
	ActionCreateProduct  = "created_product"
	ActionAnalyzeProduct = "analyzed_product"

	// Campaign Actions
	ActionLaunchCampaign       = "launched_campaign"
	ActionUpdateCampaignBudget = "updated_campaign_budget"
	ActionUpdateCampaignStatus = "updated_campaign_status"
	ActionOptimizeCampaign     = "optimized_campaign"
	ActionCreateVariants       = "created_variants"
	ActionUploadCreative       = "uploaded_creative"
	ActionScaleCampaign        = "scaled_campaign"

	// Alert Actions
	ActionReadAlert = "read_alert"

	// Resource Types
	ResourceTypeStore    = "store"
	ResourceTypeProduct  = "product"
	ResourceTypeCampaign = "campaign"
	ResourceTypeAlert    = "alert"

	// Status
	StatusSuccess = "success"
	StatusFailed  = "failed"
)
