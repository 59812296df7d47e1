package campaign_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

// GetCampaign godoc
// @Summary Get a campaign by ID
// @Tags Campaigns
// @Produce json
// @Security BearerAuth
// @Param campaignId path string true "Campaign ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.Campaign}
// @Failure 404 {object} models.ApiResponse
// @Router /api/campaigns/{campaignId} [get]
func (ctl *Controller) GetCampaign(c *gin.Context) {
	campaignID, err := utils.ParseIDParam(c, "campaignId", "Campaign not found")
	if err != nil {
		utils.RespondError(c, ctl.log, "get campaign", err)
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	campaign, err := ctl.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		utils.RespondError(c, ctl.log, "get campaign", err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Campaign fetched successfully", campaign))
}
