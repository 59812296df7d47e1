package store_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

// UpdateStore godoc
// @Summary Update a store
// @Description Partial update of name, domain, status, mode, settings and performance
// @Tags Stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeId path string true "Store ID (UUID)"
// @Param store body models.UpdateStoreRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Store}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/stores/{storeId} [put]
func (ctl *Controller) UpdateStore(c *gin.Context) {
	const op = "update store"

	storeID, err := utils.ParseIDParam(c, "storeId", "Store not found")
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	var input models.UpdateStoreRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, ctl.log, op, apperr.Validation("Invalid request body"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	store, err := ctl.stores.GetByID(ctx, storeID)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	previousDomain := store.Domain
	if !input.Apply(store) {
		utils.RespondError(c, ctl.log, op, apperr.Validation("No fields to update"))
		return
	}
	if err := store.Validate(); err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	if store.Domain != previousDomain {
		exists, err := ctl.stores.DomainExists(ctx, store.Domain, store.ID)
		if err != nil {
			utils.RespondError(c, ctl.log, op, err)
			return
		}
		if exists {
			utils.RespondError(c, ctl.log, op, apperr.Validation("Domain already in use"))
			return
		}
	}

	if err := ctl.stores.Update(ctx, store); err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Store updated successfully", store))
}
