package store_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

// GetStorePerformance godoc
// @Summary Get store performance metrics
// @Tags Stores
// @Produce json
// @Security BearerAuth
// @Param storeId path string true "Store ID (UUID)"
// @Param timeframe query string false "Timeframe passed to the engine" default(7d)
// @Success 200 {object} models.ApiResponse{data=services.StorePerformanceReport}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/stores/{storeId}/performance [get]
func (ctl *Controller) GetStorePerformance(c *gin.Context) {
	const op = "get store performance"

	storeID, err := utils.ParseIDParam(c, "storeId", "Store not found")
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}
	timeframe := c.DefaultQuery("timeframe", "7d")

	ctx, cancel := config.WithCustomTimeout(c.Request.Context(), ctl.timeout)
	defer cancel()

	store, err := ctl.stores.GetByID(ctx, storeID)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	report, err := ctl.engine.GetStorePerformance(ctx, store.ID, timeframe)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	store.Performance = report.StorePerformance
	if err := ctl.stores.Update(ctx, store); err != nil {
		ctl.log.Warn("failed to record store performance", "store_id", store.ID, "error", err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Store performance fetched successfully", report))
}
