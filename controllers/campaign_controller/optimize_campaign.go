package campaign_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

// OptimizeCampaign godoc
// @Summary Get optimisation recommendations
// @Tags Campaigns
// @Produce json
// @Security BearerAuth
// @Param campaignId path string true "Campaign ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=services.OptimizationResult}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/campaigns/{campaignId}/optimize [post]
func (ctl *Controller) OptimizeCampaign(c *gin.Context) {
	const op = "optimize campaign"

	campaignID, err := utils.ParseIDParam(c, "campaignId", "Campaign not found")
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	ctx, cancel := config.WithCustomTimeout(c.Request.Context(), ctl.timeout)
	defer cancel()

	campaign, err := ctl.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	result, err := ctl.engine.OptimizeCampaign(ctx, campaign.ID)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Campaign optimization completed", result))
}
