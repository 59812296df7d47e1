package store_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

// InitiateStore godoc
// @Summary Initiate a new store
// @Description Checks the domain, asks VANTHEX Core to materialise the store and persists it
// @Tags Stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param store body models.InitiateStoreRequest true "Store name, domain and mode"
// @Success 201 {object} models.ApiResponse{data=models.Store}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/stores/initiate [post]
func (ctl *Controller) InitiateStore(c *gin.Context) {
	const op = "initiate store"

	var input models.InitiateStoreRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, ctl.log, op, apperr.Validation("Name and domain are required"))
		return
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Domain = strings.TrimSpace(input.Domain)
	if input.Name == "" || input.Domain == "" {
		utils.RespondError(c, ctl.log, op, apperr.Validation("Name and domain are required"))
		return
	}
	if input.Mode == "" {
		input.Mode = models.StoreModeAutonomous
	}
	if !input.Mode.Valid() {
		utils.RespondError(c, ctl.log, op, apperr.Validationf("Invalid store mode: %q", input.Mode))
		return
	}

	userID, ok := utils.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(c.Request.Context(), ctl.timeout)
	defer cancel()

	exists, err := ctl.stores.DomainExists(ctx, input.Domain, uuid.Nil)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}
	if exists {
		utils.RespondError(c, ctl.log, op, apperr.Validation("Domain already in use"))
		return
	}

	store, err := ctl.engine.CreateStore(ctx, services.CreateStoreInput{
		Name:   input.Name,
		Domain: input.Domain,
		Mode:   input.Mode,
		UserID: userID,
	})
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	// The request is authoritative for identity fields.
	store.ID = uuid.Nil
	store.Name = input.Name
	store.Domain = input.Domain
	store.UserID = userID
	store.Mode = input.Mode

	if err := ctl.stores.Create(ctx, store); err != nil {
		if apperr.Is(err, apperr.KindValidation) {
			err = apperr.Upstream("vanthex.create_store", err)
		}
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	c.Set("activityResourceID", store.ID.String())
	ctl.log.Info("store initiated", "store_id", store.ID, "domain", store.Domain, "user_id", userID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Store initiated successfully", store))
}
