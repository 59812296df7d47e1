package system_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
	"golang.org/x/sync/errgroup"
)

const (
	serviceOnline        = "online"
	serviceOffline       = "offline"
	serviceNotConfigured = "not_configured"

	statusOperational = "operational"
	statusDegraded    = "degraded"
)

type ServiceStatus struct {
	Database string `json:"database"`
	Redis    string `json:"redis"`
	Engine   string `json:"engine"`
}

type StatusResponse struct {
	Status        string                   `json:"status" example:"operational"`
	Version       string                   `json:"version"`
	Environment   string                   `json:"environment"`
	UptimeSeconds int64                    `json:"uptimeSeconds"`
	Services      ServiceStatus            `json:"services"`
	Engine        *services.EngineHealth   `json:"engine,omitempty"`
	Counts        *services.PlatformCounts `json:"counts,omitempty"`
	Timestamp     time.Time                `json:"timestamp"`
}

func online(err error) string {
	if err != nil {
		return serviceOffline
	}
	return serviceOnline
}

// SystemStatus godoc
// @Summary Service status
// @Description Checks database, redis and VANTHEX Core concurrently. Always 200; status is operational or degraded.
// @Tags System
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=StatusResponse}
// @Router /api/system/status [get]
func (ctl *Controller) SystemStatus(c *gin.Context) {
	ctx, cancel := config.WithCustomTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := StatusResponse{
		Version:     ctl.version,
		Environment: ctl.env,
		Services: ServiceStatus{
			Database: serviceNotConfigured,
			Redis:    serviceNotConfigured,
			Engine:   serviceNotConfigured,
		},
	}

	// Checks never fail the group; each records its own outcome.
	var g errgroup.Group
	if ctl.stats != nil {
		g.Go(func() error {
			err := ctl.stats.Ping(ctx)
			resp.Services.Database = online(err)
			if err != nil {
				ctl.log.Warn("database check failed", "error", err)
				return nil
			}
			counts, err := ctl.stats.Counts(ctx)
			if err != nil {
				ctl.log.Warn("platform counts failed", "error", err)
				return nil
			}
			resp.Counts = &counts
			return nil
		})
	}
	if ctl.redis != nil {
		g.Go(func() error {
			err := ctl.redis.Ping(ctx).Err()
			resp.Services.Redis = online(err)
			if err != nil {
				ctl.log.Warn("redis check failed", "error", err)
			}
			return nil
		})
	}
	if ctl.engine != nil {
		g.Go(func() error {
			health, err := ctl.engine.SystemHealth(ctx)
			resp.Services.Engine = online(err)
			if err != nil {
				return nil
			}
			resp.Engine = health
			return nil
		})
	}
	_ = g.Wait()

	resp.Status = statusOperational
	for _, s := range []string{resp.Services.Database, resp.Services.Redis, resp.Services.Engine} {
		if s == serviceOffline {
			resp.Status = statusDegraded
		}
	}
	now := ctl.now()
	resp.UptimeSeconds = int64(now.Sub(ctl.startedAt) / time.Second)
	resp.Timestamp = now.UTC()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "System status fetched successfully", resp))
}
