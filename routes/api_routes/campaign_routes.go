package api_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/controllers/campaign_controller"
)

func SetupCampaignRoutes(rg *gin.RouterGroup, ctl *campaign_controller.Controller) {
	campaign := rg.Group("/campaigns")

	campaign.POST("/launch", ctl.LaunchCampaign)
	campaign.GET("/:campaignId", ctl.GetCampaign)

	// Budget & lifecycle
	campaign.PUT("/:campaignId/budget", ctl.UpdateCampaignBudget)
	campaign.PUT("/:campaignId/status", ctl.UpdateCampaignStatus)

	// Metrics & optimisation
	campaign.GET("/:campaignId/performance", ctl.GetCampaignPerformance)
	campaign.POST("/:campaignId/optimize", ctl.OptimizeCampaign)

	// Variants & creatives
	campaign.POST("/:campaignId/variants", ctl.CreateVariants)
	campaign.POST("/:campaignId/creatives", ctl.UploadCreative)
	campaign.PUT("/:campaignId/scale", ctl.ScaleCampaign)
}
