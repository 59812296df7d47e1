package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

type activityRoute struct {
	action       string
	resourceType string
	idParam      string
}

// routeActivities maps "METHOD fullPath" to the recorded action.
var routeActivities = map[string]activityRoute{
	"POST /api/stores/initiate":                       {models.ActionInitiateStore, models.ResourceTypeStore, ""},
	"PUT /api/stores/:storeId":                        {models.ActionUpdateStore, models.ResourceTypeStore, "storeId"},
	"PUT /api/stores/:storeId/products":               {models.ActionAddStoreProducts, models.ResourceTypeStore, "storeId"},
	"DELETE /api/stores/:storeId/products/:productId": {models.ActionRemoveStoreProduct, models.ResourceTypeStore, "storeId"},
	"PUT /api/stores/reroute":                         {models.ActionRerouteStoreProduct, models.ResourceTypeStore, ""},
	"POST /api/products":                              {models.ActionCreateProduct, models.ResourceTypeProduct, ""},
	"POST /api/products/analyze":                      {models.ActionAnalyzeProduct, models.ResourceTypeProduct, ""},
	"POST /api/campaigns/launch":                      {models.ActionLaunchCampaign, models.ResourceTypeCampaign, ""},
	"PUT /api/campaigns/:campaignId/budget":           {models.ActionUpdateCampaignBudget, models.ResourceTypeCampaign, "campaignId"},
	"PUT /api/campaigns/:campaignId/status":           {models.ActionUpdateCampaignStatus, models.ResourceTypeCampaign, "campaignId"},
	"POST /api/campaigns/:campaignId/optimize":        {models.ActionOptimizeCampaign, models.ResourceTypeCampaign, "campaignId"},
	"POST /api/campaigns/:campaignId/variants":        {models.ActionCreateVariants, models.ResourceTypeCampaign, "campaignId"},
	"POST /api/campaigns/:campaignId/creatives":       {models.ActionUploadCreative, models.ResourceTypeCampaign, "campaignId"},
	"PUT /api/campaigns/:campaignId/scale":            {models.ActionScaleCampaign, models.ResourceTypeCampaign, "campaignId"},
	"PUT /api/system/alerts/:alertId":                 {models.ActionReadAlert, models.ResourceTypeAlert, "alertId"},
}

// ActivityLoggingMiddleware records every non-GET request of an authenticated
// user. Must run after AuthMiddleware.
func ActivityLoggingMiddleware(activity *services.ActivityLogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		c.Next()

		route, ok := routeActivities[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}
		userID, ok := utils.CurrentUserID(c)
		if !ok {
			return
		}

		resourceID := ""
		if route.idParam != "" {
			resourceID = c.Param(route.idParam)
		}
		if id := c.GetString("activityResourceID"); id != "" {
			resourceID = id
		}

		statusCode := c.Writer.Status()
		req := services.LogActivityRequest{
			UserID:       userID,
			UserEmail:    utils.CurrentUserEmail(c),
			Action:       route.action,
			ResourceType: route.resourceType,
			ResourceID:   resourceID,
			StatusCode:   statusCode,
			Status:       models.StatusSuccess,
			Context:      c,
		}
		if statusCode < 200 || statusCode >= 300 {
			req.Status = models.StatusFailed
			req.ErrorMessage = "Request failed with status " + http.StatusText(statusCode)
		}

		ctx, cancel := config.WithRequestTimeout(c.Request.Context())
		defer cancel()
		activity.LogActivity(ctx, req)
	}
}
