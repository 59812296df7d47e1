package store_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

// GetStore godoc
// @Summary Get a store by ID
// @Tags Stores
// @Produce json
// @Security BearerAuth
// @Param storeId path string true "Store ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.Store}
// @Failure 404 {object} models.ApiResponse
// @Router /api/stores/{storeId} [get]
func (ctl *Controller) GetStore(c *gin.Context) {
	storeID, err := utils.ParseIDParam(c, "storeId", "Store not found")
	if err != nil {
		utils.RespondError(c, ctl.log, "get store", err)
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	store, err := ctl.stores.GetByID(ctx, storeID)
	if err != nil {
		utils.RespondError(c, ctl.log, "get store", err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Store fetched successfully", store))
}
