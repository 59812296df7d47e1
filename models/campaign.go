package models

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"gorm.io/gorm"
)

type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformGoogle    Platform = "google"
	PlatformPinterest Platform = "pinterest"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformFacebook, PlatformInstagram, PlatformTikTok, PlatformGoogle, PlatformPinterest:
		return true
	}
	return false
}

type CreativeType string

const (
	CreativeImage    CreativeType = "image"
	CreativeVideo    CreativeType = "video"
	CreativeCarousel CreativeType = "carousel"
)

func (t CreativeType) Valid() bool {
	switch t {
	case CreativeImage, CreativeVideo, CreativeCarousel:
		return true
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// Budget & Targeting
// ═══════════════════════════════════════════════════════════

type Budget struct {
	Daily float64 `json:"daily" gorm:"not null"`
	Total float64 `json:"total" gorm:"not null"`
	Spent float64 `json:"spent" gorm:"default:0"`
}

func (b Budget) Validate() error {
	switch {
	case b.Daily < 1:
		return apperr.Validation("Daily budget must be at least 1")
	case b.Total < 1:
		return apperr.Validation("Total budget must be at least 1")
	case b.Spent < 0:
		return apperr.Validation("Spent budget cannot be negative")
	}
	return nil
}

type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Demographics struct {
	AgeRange  AgeRange `json:"ageRange"`
	Gender    string   `json:"gender"`
	Locations []string `json:"locations"`
	Interests []string `json:"interests"`
}

type Targeting struct {
	AudienceType      string       `json:"audienceType"`
	Demographics      Demographics `json:"demographics"`
	EmotionalTriggers []string     `json:"emotionalTriggers"`
}

func (t *Targeting) Scan(value interface{}) error {
	*t = Targeting{}
	return scanJSON(value, t, "Targeting")
}

func (t Targeting) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *Targeting) ApplyDefaults() {
	if t.AudienceType == "" {
		t.AudienceType = "broad"
	}
	if t.Demographics.AgeRange == (AgeRange{}) {
		t.Demographics.AgeRange = AgeRange{Min: 18, Max: 65}
	}
	if t.Demographics.Gender == "" {
		t.Demographics.Gender = "all"
	}
	if t.Demographics.Locations == nil {
		t.Demographics.Locations = []string{}
	}
	if t.Demographics.Interests == nil {
		t.Demographics.Interests = []string{}
	}
	if t.EmotionalTriggers == nil {
		t.EmotionalTriggers = []string{}
	}
}

func (t Targeting) Validate() error {
	switch t.AudienceType {
	case "lookalike", "interest", "custom", "broad":
	default:
		return apperr.Validationf("Invalid audience type: %q", t.AudienceType)
	}
	age := t.Demographics.AgeRange
	if age.Min < 13 || age.Max > 65 || age.Min > age.Max {
		return apperr.Validation("Age range must be within 13-65 with min <= max")
	}
	switch t.Demographics.Gender {
	case "all", "male", "female":
	default:
		return apperr.Validationf("Invalid gender: %q", t.Demographics.Gender)
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Variants (embedded, JSONB)
// ═══════════════════════════════════════════════════════════

type Variant struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Status       VariantStatus `json:"status"`
	CreativeType CreativeType  `json:"creativeType"`
	CreativeURL  string        `json:"creativeUrl"`
	Headline     string        `json:"headline,omitempty"`
	Description  string        `json:"description,omitempty"`
	CallToAction string        `json:"callToAction,omitempty"`
	Performance  Performance   `json:"performance"`
}

func (v *Variant) ApplyDefaults() {
	if v.Status == "" {
		v.Status = VariantStatusDraft
	}
}

func (v Variant) Validate() error {
	switch {
	case strings.TrimSpace(v.ID) == "":
		return apperr.Validation("Variant ID is required")
	case strings.TrimSpace(v.Name) == "":
		return apperr.Validation("Variant name is required")
	case !v.Status.Valid():
		return apperr.Validationf("Invalid variant status: %q", v.Status)
	case !v.CreativeType.Valid():
		return apperr.Validationf("Invalid creative type: %q", v.CreativeType)
	case strings.TrimSpace(v.CreativeURL) == "":
		return apperr.Validation("Variant creative URL is required")
	}
	return nil
}

type VariantList []Variant

func (l *VariantList) Scan(value interface{}) error {
	*l = make(VariantList, 0)
	return scanJSON(value, l, "VariantList")
}

func (l VariantList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]Variant{})
	}
	return json.Marshal([]Variant(l))
}

// Find returns the index of the variant with id, or -1.
func (l VariantList) Find(id string) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// ═══════════════════════════════════════════════════════════
// Main Campaign Model (GORM)
// ═══════════════════════════════════════════════════════════

type Campaign struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	StoreID     uuid.UUID      `json:"storeId" gorm:"type:uuid;not null;index:idx_campaigns_store"`
	ProductID   uuid.UUID      `json:"productId" gorm:"type:uuid;not null;index:idx_campaigns_product"`
	Platform    Platform       `json:"platform" gorm:"not null;index:idx_campaigns_platform"`
	Status      CampaignStatus `json:"status" gorm:"not null;default:'draft';index:idx_campaigns_status"`
	Budget      Budget         `json:"budget" gorm:"embedded;embeddedPrefix:budget_"`
	Targeting   Targeting      `json:"targeting" gorm:"type:jsonb;not null;default:'{}'"`
	Variants    VariantList    `json:"variants" gorm:"type:jsonb;not null;default:'[]'"`
	Performance Performance    `json:"performance" gorm:"embedded;embeddedPrefix:performance_"`
	StartDate   *time.Time     `json:"startDate,omitempty"`
	EndDate     *time.Time     `json:"endDate,omitempty"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Campaign) TableName() string {
	return "campaigns"
}

func (c *Campaign) ApplyDefaults() {
	c.Name = strings.TrimSpace(c.Name)
	if c.Status == "" {
		c.Status = CampaignStatusDraft
	}
	c.Targeting.ApplyDefaults()
	if c.Variants == nil {
		c.Variants = VariantList{}
	}
	for i := range c.Variants {
		c.Variants[i].ApplyDefaults()
	}
}

func (c *Campaign) Validate() error {
	switch {
	case c.Name == "":
		return apperr.Validation("Campaign name is required")
	case c.StoreID == uuid.Nil:
		return apperr.Validation("Store ID is required")
	case c.ProductID == uuid.Nil:
		return apperr.Validation("Product ID is required")
	case !c.Platform.Valid():
		return apperr.Validationf("Invalid platform: %q", c.Platform)
	case !c.Status.Valid():
		return apperr.Validationf("Invalid campaign status: %q", c.Status)
	}
	if err := c.Budget.Validate(); err != nil {
		return err
	}
	if err := c.Targeting.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(c.Variants))
	for _, v := range c.Variants {
		if err := v.Validate(); err != nil {
			return err
		}
		if _, dup := seen[v.ID]; dup {
			return apperr.Validationf("Duplicate variant ID: %s", v.ID)
		}
		seen[v.ID] = struct{}{}
	}
	if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
		return apperr.Validation("End date must not be before start date")
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type LaunchCampaignRequest struct {
	Name      string     `json:"name,omitempty"`
	StoreID   *uuid.UUID `json:"storeId"`
	ProductID *uuid.UUID `json:"productId"`
	Platform  Platform   `json:"platform"`
	Budget    *Budget    `json:"budget"`
	Targeting *Targeting `json:"targeting,omitempty"`
	Variants  []Variant  `json:"variants,omitempty"`
}

type UpdateBudgetRequest struct {
	Budget *float64 `json:"budget"`
}

type CreateVariantsRequest struct {
	Count *int `json:"count"`
}

type ScaleAction string

const (
	ScaleActionScale ScaleAction = "scale"
	ScaleActionPause ScaleAction = "pause"
	ScaleActionStop  ScaleAction = "stop"
)

// Target returns the variant status an action drives each variant into.
func (a ScaleAction) Target() (VariantStatus, bool) {
	switch a {
	case ScaleActionScale:
		return VariantStatusWinner, true
	case ScaleActionPause:
		return VariantStatusPaused, true
	case ScaleActionStop:
		return VariantStatusCompleted, true
	}
	return "", false
}

type ScaleCampaignRequest struct {
	VariantIDs     json.RawMessage `json:"variantIds"`
	Action         ScaleAction     `json:"action"`
	BudgetIncrease float64         `json:"budgetIncrease"`
}

type UpdateCampaignStatusRequest struct {
	Status CampaignStatus `json:"status"`
}

// IDs decodes variantIds, rejecting anything other than a non-empty array of strings.
func (r ScaleCampaignRequest) IDs() ([]string, error) {
	var ids []string
	if len(r.VariantIDs) == 0 || json.Unmarshal(r.VariantIDs, &ids) != nil || len(ids) == 0 {
		return nil, apperr.Validation("Variant IDs array is required")
	}
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return nil, apperr.Validation("Variant IDs array is required")
		}
	}
	return ids, nil
}
