// @title Optivana API
// @version 1.0
// @description Store, product, campaign and alert management on top of the VANTHEX Core engine
// @host localhost:5000
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

//go:generate swag init -g main.go -o docs

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/controllers/alert_controller"
	"github.com/jarradburge/optivana-vanthex-monorepo/controllers/campaign_controller"
	"github.com/jarradburge/optivana-vanthex-monorepo/controllers/product_controller"
	"github.com/jarradburge/optivana-vanthex-monorepo/controllers/store_controller"
	"github.com/jarradburge/optivana-vanthex-monorepo/controllers/system_controller"
	_ "github.com/jarradburge/optivana-vanthex-monorepo/docs"
	"github.com/jarradburge/optivana-vanthex-monorepo/logger"
	"github.com/jarradburge/optivana-vanthex-monorepo/middleware"
	"github.com/jarradburge/optivana-vanthex-monorepo/observability"
	"github.com/jarradburge/optivana-vanthex-monorepo/repository"
	"github.com/jarradburge/optivana-vanthex-monorepo/routes/api_routes"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 15 * time.Second

func init() {
	_ = godotenv.Load()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet.
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing := observability.InitTracing(ctx, cfg, log)

	// Connect to DB
	dbs, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatal("database connection failed", "error", err)
	}
	defer dbs.Close(log)

	if err := repository.Migrate(dbs.Gorm); err != nil {
		log.Fatal("auto-migration failed", "error", err)
	}

	// Redis is optional; without it rate limiting stays in-process.
	rdb, err := config.ConnectRedis(cfg, log)
	if err != nil {
		log.Warn("redis unavailable, using in-process rate limiting", "error", err)
		rdb = nil
	}
	var rateStore middleware.WindowStore = middleware.NewMemoryWindowStore()
	if rdb != nil {
		rateStore = middleware.NewRedisWindowStore(rdb)
		defer rdb.Close()
	}

	engine, err := services.NewVanthexCoreService(services.VanthexConfig{
		BaseURL: cfg.VanthexAPIURL,
		APIKey:  cfg.VanthexAPIKey,
		Timeout: cfg.VanthexTimeout,
	}, log)
	if err != nil {
		log.Fatal("failed to initialize VANTHEX Core client", "error", err)
	}

	var uploader services.CreativeUploader = services.DisabledUploader{}
	if cfg.CloudinaryEnabled() {
		cld, err := services.NewCloudinaryService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Fatal("failed to initialize Cloudinary", "error", err)
		}
		uploader = cld
	} else {
		log.Warn("Cloudinary credentials not set, creative uploads disabled")
	}

	stores := repository.NewCachedStoreRepository(repository.NewStoreRepository(dbs.Gorm), cfg.CacheTTL)
	products := repository.NewCachedProductRepository(repository.NewProductRepository(dbs.Gorm), cfg.CacheTTL)
	campaigns := repository.NewCachedCampaignRepository(repository.NewCampaignRepository(dbs.Gorm), cfg.CacheTTL)
	alerts := repository.NewAlertRepository(dbs.Gorm)
	activity := services.NewActivityLogService(repository.NewActivityLogRepository(dbs.Gorm), log)

	budget := cfg.RequestBudget()
	systemDeps := system_controller.Deps{
		Environment: cfg.Environment,
		Version:     cfg.Version,
		Stats:       services.NewPlatformStats(dbs.Pool),
		Engine:      engine,
		Activity:    activity,
		Log:         log,
	}
	if rdb != nil {
		systemDeps.Redis = rdb
	}

	router := api_routes.SetupRouter(api_routes.RouterDeps{
		Config:    cfg,
		Log:       log,
		RateStore: rateStore,
		Activity:  activity,
		Controllers: api_routes.Controllers{
			Stores:   store_controller.New(stores, engine, log, budget),
			Products: product_controller.New(products, engine, log, budget),
			Campaigns: campaign_controller.New(campaign_controller.Deps{
				Campaigns: campaigns,
				Stores:    stores,
				Products:  products,
				Engine:    engine,
				Uploader:  uploader,
				Log:       log,
				Timeout:   budget,
			}),
			Alerts: alert_controller.New(alerts, engine, log, budget),
			System: system_controller.New(systemDeps),
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr, "environment", cfg.Environment, "vanthex_api", cfg.VanthexAPIURL)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("tracing shutdown failed", "error", err)
	}
	log.Info("server stopped")
}
