package campaign_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

// UpdateCampaignStatus godoc
// @Summary Change a campaign's status
// @Description draft→active, active→paused|completed|failed, paused→active|completed|failed
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param campaignId path string true "Campaign ID (UUID)"
// @Param body body models.UpdateCampaignStatusRequest true "Target status"
// @Success 200 {object} models.ApiResponse{data=models.Campaign}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/campaigns/{campaignId}/status [put]
func (ctl *Controller) UpdateCampaignStatus(c *gin.Context) {
	const op = "update campaign status"

	campaignID, err := utils.ParseIDParam(c, "campaignId", "Campaign not found")
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	var input models.UpdateCampaignStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil || input.Status == "" {
		utils.RespondError(c, ctl.log, op, apperr.Validation("Status is required"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	campaign, err := ctl.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	previous := campaign.Status
	if err := campaign.TransitionTo(input.Status); err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}
	if previous == campaign.Status {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Campaign status unchanged", campaign))
		return
	}

	if err := ctl.campaigns.Save(ctx, campaign); err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	ctl.log.Info("campaign status changed", "campaign_id", campaign.ID, "from", previous, "to", campaign.Status)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Campaign status updated successfully", campaign))
}
