package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
)

type ScaleResponse struct {
	Campaign *models.Campaign      `json:"campaign"`
	Result   *services.ScaleResult `json:"result"`
}

func campaignPath(id uuid.UUID) string {
	return "/api/campaigns/" + id.String()
}

func (c *Client) GetCampaign(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	if cmp, ok := c.campaigns.Get(id); ok {
		return &cmp, nil
	}
	version := c.campaigns.Version()
	var cmp models.Campaign
	if err := c.do(ctx, http.MethodGet, campaignPath(id), nil, nil, &cmp); err != nil {
		return nil, err
	}
	c.campaigns.SetIfVersion(id, cmp, version)
	return &cmp, nil
}

func (c *Client) LaunchCampaign(ctx context.Context, req models.LaunchCampaignRequest) (*models.Campaign, error) {
	var cmp models.Campaign
	if err := c.do(ctx, http.MethodPost, "/api/campaigns/launch", nil, req, &cmp); err != nil {
		return nil, err
	}
	c.campaigns.Set(cmp.ID, cmp)
	return &cmp, nil
}

func (c *Client) UpdateCampaignBudget(ctx context.Context, id uuid.UUID, budget float64) (*models.Campaign, error) {
	return c.mutateCampaign(ctx, http.MethodPut, campaignPath(id)+"/budget", id, models.UpdateBudgetRequest{Budget: &budget})
}

func (c *Client) UpdateCampaignStatus(ctx context.Context, id uuid.UUID, status models.CampaignStatus) (*models.Campaign, error) {
	return c.mutateCampaign(ctx, http.MethodPut, campaignPath(id)+"/status", id, models.UpdateCampaignStatusRequest{Status: status})
}

func (c *Client) mutateCampaign(ctx context.Context, method, path string, id uuid.UUID, body any) (*models.Campaign, error) {
	c.campaigns.Invalidate(id)
	var cmp models.Campaign
	if err := c.do(ctx, method, path, nil, body, &cmp); err != nil {
		return nil, err
	}
	c.campaigns.Set(id, cmp)
	return &cmp, nil
}

func (c *Client) GetCampaignPerformance(ctx context.Context, id uuid.UUID) (*services.CampaignPerformanceReport, error) {
	c.campaigns.Invalidate(id)
	var report services.CampaignPerformanceReport
	if err := c.do(ctx, http.MethodGet, campaignPath(id)+"/performance", nil, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) OptimizeCampaign(ctx context.Context, id uuid.UUID) (*services.OptimizationResult, error) {
	c.campaigns.Invalidate(id)
	var out services.OptimizationResult
	if err := c.do(ctx, http.MethodPost, campaignPath(id)+"/optimize", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateVariants asks the engine for count new variants. A count of zero lets
// the server pick its default.
func (c *Client) CreateVariants(ctx context.Context, id uuid.UUID, count int) ([]models.Variant, error) {
	c.campaigns.Invalidate(id)
	var body any
	if count > 0 {
		body = models.CreateVariantsRequest{Count: &count}
	}
	var out struct {
		Variants []models.Variant `json:"variants"`
	}
	if err := c.do(ctx, http.MethodPost, campaignPath(id)+"/variants", nil, body, &out); err != nil {
		return nil, err
	}
	return out.Variants, nil
}

func (c *Client) ScaleCampaign(ctx context.Context, id uuid.UUID, action models.ScaleAction, variantIDs []string, budgetIncrease float64) (*ScaleResponse, error) {
	c.campaigns.Invalidate(id)
	ids, err := json.Marshal(variantIDs)
	if err != nil {
		return nil, err
	}
	body := models.ScaleCampaignRequest{VariantIDs: ids, Action: action, BudgetIncrease: budgetIncrease}
	var out ScaleResponse
	if err := c.do(ctx, http.MethodPut, campaignPath(id)+"/scale", nil, body, &out); err != nil {
		return nil, err
	}
	if out.Campaign != nil {
		c.campaigns.Set(id, *out.Campaign)
	}
	return &out, nil
}
