package api_routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/controllers/alert_controller"
	"github.com/jarradburge/optivana-vanthex-monorepo/controllers/campaign_controller"
	"github.com/jarradburge/optivana-vanthex-monorepo/controllers/product_controller"
	"github.com/jarradburge/optivana-vanthex-monorepo/controllers/store_controller"
	"github.com/jarradburge/optivana-vanthex-monorepo/controllers/system_controller"
	"github.com/jarradburge/optivana-vanthex-monorepo/logger"
	"github.com/jarradburge/optivana-vanthex-monorepo/middleware"
	"github.com/jarradburge/optivana-vanthex-monorepo/observability"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Controllers struct {
	Stores    *store_controller.Controller
	Products  *product_controller.Controller
	Campaigns *campaign_controller.Controller
	Alerts    *alert_controller.Controller
	System    *system_controller.Controller
}

type RouterDeps struct {
	Config      config.Config
	Log         *logger.Logger
	RateStore   middleware.WindowStore
	Activity    *services.ActivityLogService
	Controllers Controllers
}

func SetupRouter(d RouterDeps) *gin.Engine {
	if d.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     d.Config.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if d.Config.OTELEnabled {
		router.Use(otelgin.Middleware(observability.ServiceName))
	}
	router.Use(middleware.RequestLogger(d.Log))
	router.Use(middleware.RateLimiter(d.RateStore, d.Config.RateLimitMax, d.Config.RateLimitWindow, d.Log))

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	router.GET("/health", d.Controllers.System.Health)
	router.GET("/api/health", d.Controllers.System.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(d.Config.JWTSecret))
	api.Use(middleware.ActivityLoggingMiddleware(d.Activity))

	SetupStoreRoutes(api, d.Controllers.Stores)
	SetupProductRoutes(api, d.Controllers.Products)
	SetupCampaignRoutes(api, d.Controllers.Campaigns)
	SetupSystemRoutes(api, d.Controllers.System, d.Controllers.Alerts)

	return router
}
