package system_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

// GetActivity godoc
// @Summary Recent activity for the current user
// @Tags System
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (1-100)" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLog,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse
// @Router /api/system/activity [get]
func (ctl *Controller) GetActivity(c *gin.Context) {
	const op = "get activity"

	userID, ok := utils.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, ctl.log, op, apperr.Validation("Page must be a positive integer"))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		utils.RespondError(c, ctl.log, op, apperr.Validation("Limit must be an integer between 1 and 100"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	entries, total, err := ctl.activity.ListForUser(ctx, userID, page, limit)
	if err != nil {
		utils.RespondError(c, ctl.log, op, err)
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity fetched successfully", entries, models.NewPagination(page, limit, total)))
}
