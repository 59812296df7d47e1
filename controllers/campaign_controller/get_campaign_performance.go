package campaign_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

// GetCampaignPerformance godoc
// @Summary Get campaign performance
// @Description Fetches engine metrics and records them on the campaign and its variants
// @Tags Campaigns
// @Produce json
// @Security BearerAuth
// @Param campaignId path string true "Campaign ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=services.CampaignPerformanceReport}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/campaigns/{campaignId}/performance [get]
func (ctl *Controller) GetCampaignPerformance(c *gin.Context) {
	const op = "get campaign performance"

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

	report, err := ctl.engine.GetCampaignPerformance(ctx, campaign.ID)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	report.Performance.FillRatios(report.Spent)
	campaign.Performance = report.Performance
	campaign.Budget.Spent = report.Spent
	for i := range report.Variants {
		vp := &report.Variants[i]
		vp.Performance.FillRatios(0)
		if idx := campaign.Variants.Find(vp.ID); idx >= 0 {
			campaign.Variants[idx].Performance = vp.Performance
		} else {
			ctl.log.Warn("performance for unknown variant", "campaign_id", campaign.ID, "variant_id", vp.ID)
		}
	}

	if err := ctl.campaigns.Save(ctx, campaign); err != nil {
		if apperr.Is(err, apperr.KindValidation) {
			err = apperr.Upstream("vanthex.campaign_performance", err)
		}
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Campaign performance fetched successfully", report))
}
