package store_controller

import (
	"time"

	"github.com/jarradburge/optivana-vanthex-monorepo/logger"
	"github.com/jarradburge/optivana-vanthex-monorepo/repository"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
)

type Controller struct {
	stores  repository.StoreRepository
	engine  services.VanthexEngine
	log     *logger.Logger
	timeout time.Duration
}

func New(stores repository.StoreRepository, engine services.VanthexEngine, log *logger.Logger, timeout time.Duration) *Controller {
	return &Controller{
		stores:  stores,
		engine:  engine,
		log:     log.With("controller", "store"),
		timeout: timeout,
	}
}
