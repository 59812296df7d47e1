package campaign_controller

import (
	"fmt"
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

const msgLaunchRequired = "Store ID, Product ID, platform, and budget are required"

// LaunchCampaign godoc
// @Summary Launch an ad campaign
// @Description Validates the request, checks store and product, and lets VANTHEX Core build the initial campaign
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param campaign body models.LaunchCampaignRequest true "Campaign launch parameters"
// @Success 201 {object} models.ApiResponse{data=models.Campaign}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/campaigns/launch [post]
func (ctl *Controller) LaunchCampaign(c *gin.Context) {
	const op = "launch campaign"

	var input models.LaunchCampaignRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, ctl.log, op, apperr.Validation(msgLaunchRequired))
		return
	}
	if input.StoreID == nil || input.ProductID == nil || input.Platform == "" || input.Budget == nil {
		utils.RespondError(c, ctl.log, op, apperr.Validation(msgLaunchRequired))
		return
	}
	if !input.Platform.Valid() {
		utils.RespondError(c, ctl.log, op, apperr.Validationf("Invalid platform: %q", input.Platform))
		return
	}
	if err := input.Budget.Validate(); err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}
	if input.Targeting != nil {
		input.Targeting.ApplyDefaults()
		if err := input.Targeting.Validate(); err != nil {
			utils.RespondError(c, ctl.log, op, err)
			return
		}
	}
	for i := range input.Variants {
		input.Variants[i].ApplyDefaults()
		if err := input.Variants[i].Validate(); err != nil {
			utils.RespondError(c, ctl.log, op, err)
			return
		}
	}

	ctx, cancel := config.WithCustomTimeout(c.Request.Context(), ctl.timeout)
	defer cancel()

	if _, err := ctl.stores.GetByID(ctx, *input.StoreID); err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}
	product, err := ctl.products.GetByID(ctx, *input.ProductID)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = fmt.Sprintf("%s - %s", product.Title, input.Platform)
	}
	variants := input.Variants
	if variants == nil {
		variants = []models.Variant{}
	}

	campaign, err := ctl.engine.LaunchCampaign(ctx, services.LaunchCampaignInput{
		Name:      name,
		StoreID:   *input.StoreID,
		ProductID: *input.ProductID,
		Platform:  input.Platform,
		Budget:    *input.Budget,
		Targeting: input.Targeting,
		Variants:  variants,
	})
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	campaign.ID = uuid.Nil
	campaign.StoreID = *input.StoreID
	campaign.ProductID = *input.ProductID
	if campaign.Platform == "" {
		campaign.Platform = input.Platform
	}
	if strings.TrimSpace(campaign.Name) == "" {
		campaign.Name = name
	}

	if err := ctl.campaigns.Create(ctx, campaign); err != nil {
		if apperr.Is(err, apperr.KindValidation) {
			// The engine produced a campaign we cannot store.
			err = apperr.Upstream("vanthex.launch_campaign", err)
		}
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	c.Set("activityResourceID", campaign.ID.String())
	ctl.log.Info("campaign launched",
		"campaign_id", campaign.ID,
		"store_id", campaign.StoreID,
		"platform", campaign.Platform,
		"variants", len(campaign.Variants),
	)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Campaign launched successfully", campaign))
}
