package api_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/controllers/alert_controller"
	"github.com/jarradburge/optivana-vanthex-monorepo/controllers/system_controller"
)

func SetupSystemRoutes(rg *gin.RouterGroup, system *system_controller.Controller, alerts *alert_controller.Controller) {
	sys := rg.Group("/system")

	sys.GET("/status", system.SystemStatus)
	sys.GET("/activity", system.GetActivity)

	sys.GET("/alerts", alerts.GetAlerts)
	sys.PUT("/alerts/:alertId", alerts.MarkAlertAsRead)
}
