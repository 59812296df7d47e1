package system_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status      string    `json:"status" example:"ok"`
	Message     string    `json:"message" example:"Optivana API is running"`
	Environment string    `json:"environment" example:"development"`
	Timestamp   time.Time `json:"timestamp"`
}

// Health godoc
// @Summary Liveness check
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
// @Router /api/health [get]
func (ctl *Controller) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "ok",
		Message:     "Optivana API is running",
		Environment: ctl.env,
		Timestamp:   ctl.now().UTC(),
	})
}
