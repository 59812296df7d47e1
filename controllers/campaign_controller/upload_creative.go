package campaign_controller

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

type UploadCreativeResponse struct {
	URL          string              `json:"url"`
	CreativeType models.CreativeType `json:"creativeType"`
	VariantID    string              `json:"variantId,omitempty"`
}

// creativeTypeOf picks the creative type from the form value or the part's content type.
func creativeTypeOf(formValue, contentType string) (models.CreativeType, error) {
	if formValue != "" {
		kind := models.CreativeType(formValue)
		if kind != models.CreativeImage && kind != models.CreativeVideo {
			return "", apperr.Validation("Creative type must be image or video")
		}
		return kind, nil
	}
	switch {
	case strings.HasPrefix(contentType, "video/"):
		return models.CreativeVideo, nil
	case strings.HasPrefix(contentType, "image/"):
		return models.CreativeImage, nil
	}
	return "", apperr.Validation("Only image or video files are allowed")
}

// UploadCreative godoc
// @Summary Upload an ad creative
// @Description Uploads an image or video to Cloudinary. With variantId the variant's creativeUrl is updated.
// @Tags Campaigns
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param campaignId path string true "Campaign ID (UUID)"
// @Param file formData file true "Creative file"
// @Param creativeType formData string false "image or video"
// @Param variantId formData string false "Variant to attach the creative to"
// @Success 200 {object} models.ApiResponse{data=UploadCreativeResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /api/campaigns/{campaignId}/creatives [post]
func (ctl *Controller) UploadCreative(c *gin.Context) {
	const op = "upload creative"

	campaignID, err := utils.ParseIDParam(c, "campaignId", "Campaign not found")
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, ctl.log, op, apperr.Validation("Creative file is required"))
		return
	}
	if fileHeader.Size > maxCreativeSize {
		utils.RespondError(c, ctl.log, op, apperr.Validationf("Creative file must be smaller than %dMB", maxCreativeSize>>20))
		return
	}
	kind, err := creativeTypeOf(c.PostForm("creativeType"), fileHeader.Header.Get("Content-Type"))
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	ctx, cancel := config.WithCustomTimeout(c.Request.Context(), ctl.timeout)
	defer cancel()

	campaign, err := ctl.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	variantID := c.PostForm("variantId")
	variantIdx := -1
	if variantID != "" {
		if variantIdx = campaign.Variants.Find(variantID); variantIdx < 0 {
			utils.RespondError(c, ctl.log, op, apperr.Validationf("Variant %s does not belong to this campaign", variantID))
			return
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, ctl.log, op, fmt.Errorf("open upload: %w", err))
		return
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(fileHeader.Filename), filepath.Ext(fileHeader.Filename))
	url, err := ctl.uploader.UploadCreative(ctx, file, name, "optivana/campaigns/"+campaign.ID.String(), kind)
	if errors.Is(err, services.ErrUploadsDisabled) {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Creative uploads are not configured"))
		return
	}
	if err != nil {
		utils.RespondError(c, ctl.log, op, apperr.Upstream("cloudinary.upload", err))
		return
	}

	if variantIdx >= 0 {
		campaign.Variants[variantIdx].CreativeURL = url
		campaign.Variants[variantIdx].CreativeType = kind
		if err := ctl.campaigns.Save(ctx, campaign); err != nil {
			utils.RespondError(c, ctl.log, op, err)
			return
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Creative uploaded successfully", UploadCreativeResponse{
		URL:          url,
		CreativeType: kind,
		VariantID:    variantID,
	}))
}
