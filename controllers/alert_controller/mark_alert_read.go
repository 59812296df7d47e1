package alert_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

// MarkAlertAsRead godoc
// @Summary Mark an alert as read
// @Description Idempotent: a second call succeeds and keeps the original readAt
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param alertId path string true "Alert ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.Alert}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/system/alerts/{alertId} [put]
func (ctl *Controller) MarkAlertAsRead(c *gin.Context) {
	const op = "mark alert read"

	alertID, err := utils.ParseIDParam(c, "alertId", "Alert not found")
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(c.Request.Context(), ctl.timeout)
	defer cancel()

	alert, err := ctl.alerts.GetByID(ctx, alertID)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}
	// Other users' alerts are reported as missing.
	if alert.UserID != userID {
		utils.RespondError(c, ctl.log, op, apperr.NotFound("Alert not found"))
		return
	}
	if alert.Read {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Alert marked as read", alert))
		return
	}

	if _, err := ctl.engine.MarkAlertRead(ctx, alert.ID, userID); err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	updated, err := ctl.alerts.MarkRead(ctx, alert.ID)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Alert marked as read", updated))
}
