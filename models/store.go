package models

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StoreStatus string

const (
	StoreStatusActive StoreStatus = "active"
	StoreStatusPaused StoreStatus = "paused"
	StoreStatusDraft  StoreStatus = "draft"
)

func (s StoreStatus) Valid() bool {
	switch s {
	case StoreStatusActive, StoreStatusPaused, StoreStatusDraft:
		return true
	}
	return false
}

type StoreMode string

const (
	StoreModeAutonomous StoreMode = "autonomous"
	StoreModeHybrid     StoreMode = "hybrid"
	StoreModeManual     StoreMode = "manual"
)

func (m StoreMode) Valid() bool {
	switch m {
	case StoreModeAutonomous, StoreModeHybrid, StoreModeManual:
		return true
	}
	return false
}

type StoreSettings struct {
	Theme        string            `json:"theme"`
	Integrations datatypes.JSONMap `json:"integrations"`
}

func (s *StoreSettings) Scan(value interface{}) error {
	*s = StoreSettings{}
	return scanJSON(value, s, "StoreSettings")
}

func (s StoreSettings) Value() (driver.Value, error) {
	if s.Integrations == nil {
		s.Integrations = datatypes.JSONMap{}
	}
	return json.Marshal(s)
}

type StorePerformance struct {
	Revenue        float64 `json:"revenue" gorm:"default:0"`
	Profit         float64 `json:"profit" gorm:"default:0"`
	ROAS           float64 `json:"roas" gorm:"default:0"`
	ConversionRate float64 `json:"conversionRate" gorm:"default:0"`
}

// ═══════════════════════════════════════════════════════════
// Main Store Model (GORM)
// ═══════════════════════════════════════════════════════════

type Store struct {
	ID          uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string           `json:"name" gorm:"not null"`
	Domain      string           `json:"domain" gorm:"not null;uniqueIndex:idx_stores_domain"`
	UserID      uuid.UUID        `json:"userId" gorm:"type:uuid;not null;index"`
	Status      StoreStatus      `json:"status" gorm:"not null;default:'draft'"`
	Mode        StoreMode        `json:"mode" gorm:"not null;default:'autonomous'"`
	Settings    StoreSettings    `json:"settings" gorm:"type:jsonb;not null;default:'{}'"`
	Products    IDList           `json:"products" gorm:"type:jsonb;not null;default:'[]'"`
	Performance StorePerformance `json:"performance" gorm:"embedded;embeddedPrefix:performance_"`
	CreatedAt   time.Time        `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time        `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

// BeforeCreate hook - auto-generate UUID v7
func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Store) TableName() string {
	return "stores"
}

func (s *Store) ApplyDefaults() {
	s.Name = strings.TrimSpace(s.Name)
	s.Domain = strings.TrimSpace(s.Domain)
	if s.Status == "" {
		s.Status = StoreStatusDraft
	}
	if s.Mode == "" {
		s.Mode = StoreModeAutonomous
	}
	if s.Settings.Theme == "" {
		s.Settings.Theme = "default"
	}
	if s.Settings.Integrations == nil {
		s.Settings.Integrations = datatypes.JSONMap{}
	}
	if s.Products == nil {
		s.Products = IDList{}
	}
}

func (s *Store) Validate() error {
	switch {
	case strings.TrimSpace(s.Name) == "":
		return apperr.Validation("Store name is required")
	case strings.TrimSpace(s.Domain) == "":
		return apperr.Validation("Domain is required")
	case s.UserID == uuid.Nil:
		return apperr.Validation("User ID is required")
	case !s.Status.Valid():
		return apperr.Validationf("Invalid store status: %q", s.Status)
	case !s.Mode.Valid():
		return apperr.Validationf("Invalid store mode: %q", s.Mode)
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type InitiateStoreRequest struct {
	Name   string    `json:"name"`
	Domain string    `json:"domain"`
	Mode   StoreMode `json:"mode"`
}

type StoreSettingsUpdate struct {
	Theme *string `json:"theme"`
	// A null value removes the integration key.
	Integrations map[string]interface{} `json:"integrations"`
}

type UpdateStoreRequest struct {
	Name        *string              `json:"name"`
	Domain      *string              `json:"domain"`
	Status      *StoreStatus         `json:"status"`
	Mode        *StoreMode           `json:"mode"`
	Settings    *StoreSettingsUpdate `json:"settings"`
	Performance *StorePerformance    `json:"performance"`
}

// Apply merges the request into s and reports whether anything was set.
func (r UpdateStoreRequest) Apply(s *Store) bool {
	changed := false
	if r.Name != nil {
		s.Name = strings.TrimSpace(*r.Name)
		changed = true
	}
	if r.Domain != nil {
		s.Domain = strings.TrimSpace(*r.Domain)
		changed = true
	}
	if r.Status != nil {
		s.Status = *r.Status
		changed = true
	}
	if r.Mode != nil {
		s.Mode = *r.Mode
		changed = true
	}
	if r.Performance != nil {
		s.Performance = *r.Performance
		changed = true
	}
	if r.Settings != nil {
		if r.Settings.Theme != nil {
			s.Settings.Theme = *r.Settings.Theme
			changed = true
		}
		if len(r.Settings.Integrations) > 0 {
			merged := datatypes.JSONMap{}
			for k, v := range s.Settings.Integrations {
				merged[k] = v
			}
			for k, v := range r.Settings.Integrations {
				if v == nil {
					delete(merged, k)
					continue
				}
				merged[k] = v
			}
			s.Settings.Integrations = merged
			changed = true
		}
	}
	return changed
}

type StoreProductsRequest struct {
	ProductIDs *[]uuid.UUID `json:"productIds"`
}

type RerouteRequest struct {
	StoreID   *uuid.UUID `json:"storeId"`
	ProductID *uuid.UUID `json:"productId"`
	OrderID   string     `json:"orderId,omitempty"`
}
