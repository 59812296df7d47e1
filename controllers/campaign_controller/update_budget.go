package campaign_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

// UpdateCampaignBudget godoc
// @Summary Update a campaign budget
// @Description The engine applies the new budget; the budget it returns is stored
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param campaignId path string true "Campaign ID (UUID)"
// @Param body body models.UpdateBudgetRequest true "New budget"
// @Success 200 {object} models.ApiResponse{data=models.Campaign}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/campaigns/{campaignId}/budget [put]
func (ctl *Controller) UpdateCampaignBudget(c *gin.Context) {
	const op = "update campaign budget"

	campaignID, err := utils.ParseIDParam(c, "campaignId", "Campaign not found")
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	var input models.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&input); err != nil || input.Budget == nil || *input.Budget <= 0 {
		utils.RespondError(c, ctl.log, op, apperr.Validation("Valid budget is required"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(c.Request.Context(), ctl.timeout)
	defer cancel()

	campaign, err := ctl.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	budget, err := ctl.engine.UpdateCampaignBudget(ctx, campaign.ID, *input.Budget)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	campaign.Budget = *budget
	if err := ctl.campaigns.Save(ctx, campaign); err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Campaign budget updated successfully", campaign))
}
