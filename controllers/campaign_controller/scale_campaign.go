package campaign_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

type ScaleCampaignResponse struct {
	Campaign *models.Campaign      `json:"campaign"`
	Result   *services.ScaleResult `json:"result"`
}

// ScaleCampaign godoc
// @Summary Scale, pause or stop campaign variants
// @Description scale marks variants as winners, pause pauses them, stop completes them
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param campaignId path string true "Campaign ID (UUID)"
// @Param body body models.ScaleCampaignRequest true "Variants and action"
// @Success 200 {object} models.ApiResponse{data=ScaleCampaignResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/campaigns/{campaignId}/scale [put]
func (ctl *Controller) ScaleCampaign(c *gin.Context) {
	const op = "scale campaign"

	campaignID, err := utils.ParseIDParam(c, "campaignId", "Campaign not found")
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	var input models.ScaleCampaignRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, ctl.log, op, apperr.Validation("Variant IDs array is required"))
		return
	}
	variantIDs, err := input.IDs()
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}
	target, ok := input.Action.Target()
	if !ok {
		utils.RespondError(c, ctl.log, op, apperr.Validation("Valid action is required (scale, pause, or stop)"))
		return
	}
	if input.BudgetIncrease < 0 {
		utils.RespondError(c, ctl.log, op, apperr.Validation("Budget increase cannot be negative"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(c.Request.Context(), ctl.timeout)
	defer cancel()

	campaign, err := ctl.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	// Check every transition before the engine is asked to act.
	indexes := make([]int, len(variantIDs))
	for i, id := range variantIDs {
		idx := campaign.Variants.Find(id)
		if idx < 0 {
			utils.RespondError(c, ctl.log, op, apperr.Validationf("Variant %s does not belong to this campaign", id))
			return
		}
		if !campaign.Variants[idx].Status.CanTransitionTo(target) {
			utils.RespondError(c, ctl.log, op, apperr.Validationf("Cannot %s variant %s in status %s",
				input.Action, id, campaign.Variants[idx].Status))
			return
		}
		indexes[i] = idx
	}

	result, err := ctl.engine.ScaleCampaign(ctx, services.ScaleInput{
		CampaignID:     campaign.ID,
		VariantIDs:     variantIDs,
		Action:         input.Action,
		BudgetIncrease: input.BudgetIncrease,
	})
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	for _, idx := range indexes {
		if err := campaign.Variants[idx].TransitionTo(target); err != nil {
			utils.RespondError(c, ctl.log, op, err)
			return
		}
	}
	if result.Budget != nil {
		campaign.Budget = *result.Budget
	}

	if err := ctl.campaigns.Save(ctx, campaign); err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	ctl.log.Info("campaign scaled",
		"campaign_id", campaign.ID,
		"action", input.Action,
		"variants", len(variantIDs),
		"budget_increase", input.BudgetIncrease,
	)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Campaign scaled successfully", ScaleCampaignResponse{
		Campaign: campaign,
		Result:   result,
	}))
}
