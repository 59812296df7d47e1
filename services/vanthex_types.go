package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
)

// ═══════════════════════════════════════════════════════════
// Engine request/response payloads
// ═══════════════════════════════════════════════════════════

type CreateStoreInput struct {
	Name   string           `json:"name"`
	Domain string           `json:"domain"`
	Mode   models.StoreMode `json:"mode"`
	UserID uuid.UUID        `json:"userId"`
}

type StorePerformanceReport struct {
	StoreID   uuid.UUID `json:"storeId"`
	Timeframe string    `json:"timeframe"`
	models.StorePerformance
	Orders   int `json:"orders"`
	Visitors int `json:"visitors"`
}

func (r *StorePerformanceReport) validate() error {
	if r.Orders < 0 || r.Visitors < 0 {
		return errors.New("negative order or visitor count")
	}
	return nil
}

type StoreProductsResult struct {
	StoreID  uuid.UUID     `json:"storeId"`
	Products models.IDList `json:"products"`
}

func (r *StoreProductsResult) validate() error {
	if r.Products == nil {
		return errors.New("missing products list")
	}
	return nil
}

type RerouteInput struct {
	StoreID   uuid.UUID `json:"storeId"`
	ProductID uuid.UUID `json:"productId"`
	OrderID   string    `json:"orderId,omitempty"`
}

type RerouteResult struct {
	Rerouted       bool   `json:"rerouted"`
	Supplier       string `json:"supplier,omitempty"`
	OrdersAffected int    `json:"ordersAffected"`
	Message        string `json:"message,omitempty"`
}

func (r *RerouteResult) validate() error {
	if r.OrdersAffected < 0 {
		return errors.New("negative ordersAffected")
	}
	return nil
}

type DiscoverInput struct {
	Category string `json:"category,omitempty"`
	Limit    int    `json:"limit"`
	Source   string `json:"source,omitempty"`
}

type analysisEnvelope struct {
	Product any `json:"product"`
}

type EmotionalAnalysisResult models.EmotionalAnalysis

func (r *EmotionalAnalysisResult) validate() error {
	if r.PrimaryEmotion == "" {
		return errors.New("missing primaryEmotion")
	}
	return nil
}

type LaunchCampaignInput struct {
	Name      string            `json:"name,omitempty"`
	StoreID   uuid.UUID         `json:"storeId"`
	ProductID uuid.UUID         `json:"productId"`
	Platform  models.Platform   `json:"platform"`
	Budget    models.Budget     `json:"budget"`
	Targeting *models.Targeting `json:"targeting,omitempty"`
	Variants  []models.Variant  `json:"variants"`
}

type budgetInput struct {
	CampaignID uuid.UUID `json:"campaignId"`
	Budget     float64   `json:"budget"`
}

type campaignRef struct {
	CampaignID uuid.UUID `json:"campaignId"`
}

type VariantPerformance struct {
	ID          string             `json:"id"`
	Performance models.Performance `json:"performance"`
}

type CampaignPerformanceReport struct {
	CampaignID  uuid.UUID            `json:"campaignId"`
	Spent       float64              `json:"spent"`
	Performance models.Performance   `json:"performance"`
	Variants    []VariantPerformance `json:"variants"`
}

func (r *CampaignPerformanceReport) validate() error {
	if r.Spent < 0 {
		return errors.New("negative spend")
	}
	for i, v := range r.Variants {
		if v.ID == "" {
			return fmt.Errorf("variant %d has no id", i)
		}
	}
	return nil
}

type launchVariantsInput struct {
	Campaign    *models.Campaign `json:"campaign"`
	NumVariants int              `json:"numVariants"`
}

type Recommendation struct {
	Type      string  `json:"type"`
	VariantID string  `json:"variantId,omitempty"`
	Message   string  `json:"message"`
	Impact    float64 `json:"impact,omitempty"`
}

type OptimizationResult struct {
	CampaignID      uuid.UUID        `json:"campaignId"`
	Recommendations []Recommendation `json:"recommendations"`
	ProjectedROAS   float64          `json:"projectedRoas"`
}

func (r *OptimizationResult) validate() error {
	if r.Recommendations == nil {
		return errors.New("missing recommendations")
	}
	return nil
}

type ScaleInput struct {
	CampaignID     uuid.UUID          `json:"campaignId"`
	VariantIDs     []string           `json:"variantIds"`
	Action         models.ScaleAction `json:"action"`
	BudgetIncrease float64            `json:"budgetIncrease"`
}

type ScaleResult struct {
	CampaignID uuid.UUID          `json:"campaignId"`
	Action     models.ScaleAction `json:"action"`
	Variants   []string           `json:"variants"`
	Budget     *models.Budget     `json:"budget,omitempty"`
	Message    string             `json:"message,omitempty"`
}

func (r *ScaleResult) validate() error {
	if _, ok := r.Action.Target(); !ok {
		return fmt.Errorf("unknown action %q", r.Action)
	}
	if r.Budget != nil {
		return r.Budget.Validate()
	}
	return nil
}

type ListAlertsInput struct {
	UserID  uuid.UUID        `json:"userId"`
	StoreID *uuid.UUID       `json:"storeId,omitempty"`
	Type    models.AlertType `json:"type,omitempty"`
	Limit   int              `json:"limit"`
}

type alertReadInput struct {
	AlertID uuid.UUID `json:"alertId"`
	UserID  uuid.UUID `json:"userId"`
}

type AlertReadResult struct {
	AlertID uuid.UUID `json:"alertId"`
	Read    bool      `json:"read"`
}

func (r *AlertReadResult) validate() error {
	if !r.Read {
		return errors.New("engine did not mark alert read")
	}
	return nil
}

type EngineHealth struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

func (h *EngineHealth) validate() error {
	if h.Status == "" {
		return errors.New("missing status")
	}
	return nil
}
