package store_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

// RerouteSupplier godoc
// @Summary Reroute a product's orders to another supplier
// @Description Reroutes all open orders of the store product, or only orderId when given
// @Tags Stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.RerouteRequest true "Store, product and optional order"
// @Success 200 {object} models.ApiResponse{data=services.RerouteResult}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/stores/reroute [put]
func (ctl *Controller) RerouteSupplier(c *gin.Context) {
	const op = "reroute supplier"

	var input models.RerouteRequest
	if err := c.ShouldBindJSON(&input); err != nil || input.StoreID == nil || input.ProductID == nil {
		utils.RespondError(c, ctl.log, op, apperr.Validation("Store ID and Product ID are required"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(c.Request.Context(), ctl.timeout)
	defer cancel()

	if _, err := ctl.stores.GetByID(ctx, *input.StoreID); err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	result, err := ctl.engine.RerouteOrder(ctx, services.RerouteInput{
		StoreID:   *input.StoreID,
		ProductID: *input.ProductID,
		OrderID:   input.OrderID,
	})
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	c.Set("activityResourceID", input.StoreID.String())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Supplier rerouted successfully", result))
}
