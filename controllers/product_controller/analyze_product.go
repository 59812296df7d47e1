package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

type AnalyzeProductResponse struct {
	Analysis *models.EmotionalAnalysis `json:"analysis"`
	Product  *models.Product           `json:"product,omitempty"`
}

// AnalyzeProduct godoc
// @Summary Run emotional analysis on a product
// @Description With productId the stored product is analysed and the result saved on it.
// @Description With productData the raw payload is analysed and nothing is stored.
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.AnalyzeProductRequest true "productId or productData"
// @Success 200 {object} models.ApiResponse{data=AnalyzeProductResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/products/analyze [post]
func (ctl *Controller) AnalyzeProduct(c *gin.Context) {
	const op = "analyze product"

	var input models.AnalyzeProductRequest
	if err := c.ShouldBindJSON(&input); err != nil || (input.ProductID == nil && len(input.ProductData) == 0) {
		utils.RespondError(c, ctl.log, op, apperr.Validation("Either productId or productData is required"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(c.Request.Context(), ctl.timeout)
	defer cancel()

	if input.ProductID == nil {
		analysis, err := ctl.engine.AnalyzeProductEmotions(ctx, input.ProductData)
		if err != nil {
			utils.RespondError(c, ctl.log, op, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Product analyzed successfully", AnalyzeProductResponse{Analysis: analysis}))
		return
	}

	product, err := ctl.products.GetByID(ctx, *input.ProductID)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	analysis, err := ctl.engine.AnalyzeProductEmotions(ctx, product)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	updated, err := ctl.products.UpdateEmotionalAnalysis(ctx, product.ID, *analysis)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	c.Set("activityResourceID", product.ID.String())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product analyzed successfully", AnalyzeProductResponse{
		Analysis: &updated.EmotionalAnalysis,
		Product:  updated,
	}))
}
