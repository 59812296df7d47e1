package product_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

// GetTrendingProducts godoc
// @Summary Discover trending products
// @Description Engine discovery; results keep the engine's order and are stored locally
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category filter"
// @Param source query string false "Source platform filter"
// @Param limit query int false "Max results (1-100)" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/products/trending [get]
func (ctl *Controller) GetTrendingProducts(c *gin.Context) {
	const op = "get trending products"

	limit := defaultTrendingLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxTrendingLimit {
			utils.RespondError(c, ctl.log, op, apperr.Validationf("Limit must be an integer between 1 and %d", maxTrendingLimit))
			return
		}
		limit = n
	}

	ctx, cancel := config.WithCustomTimeout(c.Request.Context(), ctl.timeout)
	defer cancel()

	discovered, err := ctl.engine.DiscoverProducts(ctx, services.DiscoverInput{
		Category: c.Query("category"),
		Limit:    limit,
		Source:   c.Query("source"),
	})
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	products := make([]models.Product, 0, len(discovered))
	for i := range discovered {
		stored, err := ctl.products.UpsertBySource(ctx, &discovered[i])
		if err != nil {
			if apperr.Is(err, apperr.KindValidation) {
				ctl.log.Warn("skipping invalid discovered product",
					"title", discovered[i].Title,
					"external_id", discovered[i].Source.ExternalID,
					"error", err,
				)
				continue
			}
			utils.RespondError(c, ctl.log, op, err)
			return
		}
		products = append(products, *stored)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Trending products fetched successfully", products))
}
