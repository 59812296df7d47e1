package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

// GetProduct godoc
// @Summary Get product details
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 404 {object} models.ApiResponse
// @Router /api/products/{productId} [get]
func (ctl *Controller) GetProduct(c *gin.Context) {
	productID, err := utils.ParseIDParam(c, "productId", "Product not found")
	if err != nil {
		utils.RespondError(c, ctl.log, "get product", err)
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	product, err := ctl.products.GetByID(ctx, productID)
	if err != nil {
		utils.RespondError(c, ctl.log, "get product", err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
