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

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

type ProductSource struct {
	Platform   string `json:"platform" gorm:"not null;uniqueIndex:idx_products_source,priority:1"`
	ExternalID string `json:"externalId" gorm:"not null;uniqueIndex:idx_products_source,priority:2"`
	URL        string `json:"url,omitempty"`
}

type BuyerPersona struct {
	Persona           string            `json:"persona"`
	MatchScore        float64           `json:"matchScore"`
	Demographics      datatypes.JSONMap `json:"demographics,omitempty"`
	PainPoints        []string          `json:"painPoints"`
	Motivations       []string          `json:"motivations"`
	EmotionalTriggers []string          `json:"emotionalTriggers"`
}

type PersonaList []BuyerPersona

func (p *PersonaList) Scan(value interface{}) error {
	*p = make(PersonaList, 0)
	return scanJSON(value, p, "PersonaList")
}

func (p PersonaList) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal([]BuyerPersona{})
	}
	return json.Marshal([]BuyerPersona(p))
}

type EmotionalAnalysis struct {
	PrimaryEmotion    string      `json:"primaryEmotion" gorm:"index:idx_products_primary_emotion"`
	EmotionalSpectrum StringList  `json:"emotionalSpectrum" gorm:"type:jsonb;not null;default:'[]'"`
	BuyerPersonas     PersonaList `json:"buyerPersonas" gorm:"type:jsonb;not null;default:'[]'"`
}

type ProductPerformance struct {
	TrendScore     float64 `json:"trendScore" gorm:"default:0;index:idx_products_trend_score,sort:desc"`
	ConversionRate float64 `json:"conversionRate" gorm:"default:0"`
	Popularity     float64 `json:"popularity" gorm:"default:0"`
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID                uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey"`
	Title             string             `json:"title" gorm:"not null"`
	Description       string             `json:"description" gorm:"not null"`
	Price             float64            `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Images            StringList         `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Category          string             `json:"category" gorm:"not null;index:idx_products_category"`
	Source            ProductSource      `json:"source" gorm:"embedded;embeddedPrefix:source_"`
	EmotionalAnalysis EmotionalAnalysis  `json:"emotionalAnalysis" gorm:"embedded;embeddedPrefix:emotional_"`
	Performance       ProductPerformance `json:"performance" gorm:"embedded;embeddedPrefix:performance_"`
	CreatedAt         time.Time          `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt         time.Time          `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) ApplyDefaults() {
	p.Title = strings.TrimSpace(p.Title)
	p.Category = strings.TrimSpace(p.Category)
	if p.Images == nil {
		p.Images = StringList{}
	}
	if p.EmotionalAnalysis.EmotionalSpectrum == nil {
		p.EmotionalAnalysis.EmotionalSpectrum = StringList{}
	}
	if p.EmotionalAnalysis.BuyerPersonas == nil {
		p.EmotionalAnalysis.BuyerPersonas = PersonaList{}
	}
}

func (p *Product) Validate() error {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return apperr.Validation("Product title is required")
	case strings.TrimSpace(p.Description) == "":
		return apperr.Validation("Product description is required")
	case p.Price < 0:
		return apperr.Validation("Price must be 0 or greater")
	case len(p.Images) == 0:
		return apperr.Validation("At least one image is required")
	case strings.TrimSpace(p.Category) == "":
		return apperr.Validation("Category is required")
	case strings.TrimSpace(p.Source.Platform) == "":
		return apperr.Validation("Source platform is required")
	case strings.TrimSpace(p.Source.ExternalID) == "":
		return apperr.Validation("Source external ID is required")
	}
	for i, img := range p.Images {
		if strings.TrimSpace(img) == "" {
			return apperr.Validationf("Image %d is empty", i)
		}
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type CreateProductRequest struct {
	Title       string        `json:"title" example:"Posture Corrector"`
	Description string        `json:"description" example:"Adjustable posture support brace"`
	Price       float64       `json:"price" example:"24.99"`
	Images      []string      `json:"images"`
	Category    string        `json:"category" example:"health"`
	Source      ProductSource `json:"source"`
}

func (r CreateProductRequest) ToProduct() *Product {
	return &Product{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Images:      StringList(r.Images),
		Category:    r.Category,
		Source:      r.Source,
	}
}

type AnalyzeProductRequest struct {
	ProductID   *uuid.UUID             `json:"productId"`
	ProductData map[string]interface{} `json:"productData"`
}
