package campaign_controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

type CreateVariantsResponse struct {
	Variants []models.Variant `json:"variants"`
}

// CreateVariants godoc
// @Summary Generate creative variants
// @Description The engine launches count variants (default 3). Variants join as draft or active; drafts added to an active campaign start active
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param campaignId path string true "Campaign ID (UUID)"
// @Param body body models.CreateVariantsRequest false "Number of variants (1-10)"
// @Success 200 {object} models.ApiResponse{data=CreateVariantsResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/campaigns/{campaignId}/variants [post]
func (ctl *Controller) CreateVariants(c *gin.Context) {
	const op = "create variants"

	campaignID, err := utils.ParseIDParam(c, "campaignId", "Campaign not found")
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	var input models.CreateVariantsRequest
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, ctl.log, op, apperr.Validationf("Count must be an integer between 1 and %d", maxVariantCount))
		return
	}
	count := defaultVariantCount
	if input.Count != nil {
		count = *input.Count
	}
	if count < 1 || count > maxVariantCount {
		utils.RespondError(c, ctl.log, op, apperr.Validationf("Count must be an integer between 1 and %d", maxVariantCount))
		return
	}

	ctx, cancel := config.WithCustomTimeout(c.Request.Context(), ctl.timeout)
	defer cancel()

	campaign, err := ctl.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	generated, err := ctl.engine.LaunchCampaignVariants(ctx, campaign, count)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	if err := checkLaunchedVariants(campaign, generated); err != nil {
		utils.RespondError(c, ctl.log, op, apperr.Upstream("vanthex.launch_variants", err))
		return
	}

	campaign.Variants = append(campaign.Variants, generated...)
	if campaign.Status == models.CampaignStatusActive {
		campaign.ActivateDraftVariants()
	}
	if err := ctl.campaigns.Save(ctx, campaign); err != nil {
		if apperr.Is(err, apperr.KindValidation) {
			err = apperr.Upstream("vanthex.launch_variants", err)
		}
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	added := campaign.Variants[len(campaign.Variants)-len(generated):]
	generated = append([]models.Variant(nil), added...)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Variants created successfully", CreateVariantsResponse{Variants: generated}))
}

// checkLaunchedVariants rejects engine variants that are invalid, not draft or
// active, or whose ids repeat within the batch or the campaign. A missing
// status means draft.
func checkLaunchedVariants(campaign *models.Campaign, generated []models.Variant) error {
	seen := make(map[string]struct{}, len(generated))
	for i := range generated {
		v := &generated[i]
		v.ApplyDefaults()
		if v.Status != models.VariantStatusDraft && v.Status != models.VariantStatusActive {
			return fmt.Errorf("variant %s launched in status %s", v.ID, v.Status)
		}
		if err := v.Validate(); err != nil {
			return err
		}
		if _, dup := seen[v.ID]; dup || campaign.Variants.Find(v.ID) >= 0 {
			return errors.New("duplicate variant id " + v.ID)
		}
		seen[v.ID] = struct{}{}
	}
	return nil
}
