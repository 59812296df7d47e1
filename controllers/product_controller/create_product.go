package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Registers a product directly, without engine discovery
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.CreateProductRequest true "Product"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Router /api/products [post]
func (ctl *Controller) CreateProduct(c *gin.Context) {
	var input models.CreateProductRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, ctl.log, "create product", apperr.Validation("Invalid request body"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	product := input.ToProduct()
	if err := ctl.products.Create(ctx, product); err != nil {
		utils.RespondError(c, ctl.log, "create product", err)
		return
	}

	c.Set("activityResourceID", product.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
