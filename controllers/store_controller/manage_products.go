package store_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

// AddProductsToStore godoc
// @Summary Add products to a store
// @Description The engine performs the association; the returned product list is stored
// @Tags Stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeId path string true "Store ID (UUID)"
// @Param body body models.StoreProductsRequest true "Product IDs"
// @Success 200 {object} models.ApiResponse{data=models.Store}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/stores/{storeId}/products [put]
func (ctl *Controller) AddProductsToStore(c *gin.Context) {
	const op = "add products to store"

	storeID, err := utils.ParseIDParam(c, "storeId", "Store not found")
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	var input models.StoreProductsRequest
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductIDs == nil {
		utils.RespondError(c, ctl.log, op, apperr.Validation("Product IDs array is required"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(c.Request.Context(), ctl.timeout)
	defer cancel()

	if _, err := ctl.stores.GetByID(ctx, storeID); err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	result, err := ctl.engine.AddProductsToStore(ctx, storeID, *input.ProductIDs)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	store, err := ctl.stores.SetProducts(ctx, storeID, result.Products)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products added to store successfully", store))
}

// RemoveProductFromStore godoc
// @Summary Remove a product from a store
// @Tags Stores
// @Produce json
// @Security BearerAuth
// @Param storeId path string true "Store ID (UUID)"
// @Param productId path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.Store}
// @Failure 404 {object} models.ApiResponse
// @Router /api/stores/{storeId}/products/{productId} [delete]
func (ctl *Controller) RemoveProductFromStore(c *gin.Context) {
	const op = "remove product from store"

	storeID, err := utils.ParseIDParam(c, "storeId", "Store not found")
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}
	productID, err := utils.ParseIDParam(c, "productId", "Product not found")
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	ctx, cancel := config.WithCustomTimeout(c.Request.Context(), ctl.timeout)
	defer cancel()

	if _, err := ctl.stores.GetByID(ctx, storeID); err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	result, err := ctl.engine.RemoveProductFromStore(ctx, storeID, productID)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	store, err := ctl.stores.SetProducts(ctx, storeID, result.Products)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product removed from store successfully", store))
}
