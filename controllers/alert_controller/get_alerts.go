package alert_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/repository"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

// GetAlerts godoc
// @Summary List alerts for the current user
// @Description Alerts come from VANTHEX Core and are stored locally; a locally read alert stays read.
// @Description When the engine is unreachable the stored alerts are returned.
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param storeId query string false "Store ID (UUID)"
// @Param type query string false "info, success, warning or error"
// @Param limit query int false "Max results (1-100)" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.Alert}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/system/alerts [get]
func (ctl *Controller) GetAlerts(c *gin.Context) {
	const op = "get alerts"

	userID, ok := utils.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	in := services.ListAlertsInput{UserID: userID, Limit: defaultAlertLimit}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxAlertLimit {
			utils.RespondError(c, ctl.log, op, apperr.Validationf("Limit must be an integer between 1 and %d", maxAlertLimit))
			return
		}
		in.Limit = n
	}
	if raw := c.Query("type"); raw != "" {
		in.Type = models.AlertType(raw)
		if !in.Type.Valid() {
			utils.RespondError(c, ctl.log, op, apperr.Validationf("Invalid alert type: %q", raw))
			return
		}
	}
	if raw := c.Query("storeId"); raw != "" {
		storeID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, ctl.log, op, apperr.Validation("Invalid store ID"))
			return
		}
		in.StoreID = &storeID
	}

	ctx, cancel := config.WithCustomTimeout(c.Request.Context(), ctl.timeout)
	defer cancel()

	fetched, err := ctl.engine.ListAlerts(ctx, in)
	if apperr.Is(err, apperr.KindUpstream) {
		ctl.log.Warn("engine alerts unavailable, serving stored alerts", "user_id", userID, "error", err)
		stored, err := ctl.alerts.ListByUser(ctx, userID, repository.AlertFilter{
			StoreID: in.StoreID,
			Type:    in.Type,
			Limit:   in.Limit,
		})
		if err != nil {
			utils.RespondError(c, ctl.log, op, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Alerts fetched from local store", stored))
		return
	}
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	alerts := make([]models.Alert, 0, len(fetched))
	for i := range fetched {
		if fetched[i].ID == uuid.Nil {
			ctl.log.Warn("engine returned alert without id", "title", fetched[i].Title)
			continue
		}
		if fetched[i].UserID != userID {
			ctl.log.Warn("engine returned alert for another user", "alert_id", fetched[i].ID, "user_id", userID)
			continue
		}
		stored, err := ctl.alerts.Upsert(ctx, &fetched[i])
		if err != nil {
			if apperr.Is(err, apperr.KindValidation) {
				ctl.log.Warn("skipping invalid alert", "alert_id", fetched[i].ID, "error", err)
				continue
			}
			utils.RespondError(c, ctl.log, op, err)
			return
		}
		alerts = append(alerts, *stored)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Alerts fetched successfully", alerts))
}
