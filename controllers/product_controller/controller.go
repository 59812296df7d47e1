package product_controller

import (
	"time"

	"github.com/jarradburge/optivana-vanthex-monorepo/logger"
	"github.com/jarradburge/optivana-vanthex-monorepo/repository"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
)

const (
	defaultTrendingLimit = 10
	maxTrendingLimit     = 100
)

type Controller struct {
	products repository.ProductRepository
	engine   services.VanthexEngine
	log      *logger.Logger
	timeout  time.Duration
}

func New(products repository.ProductRepository, engine services.VanthexEngine, log *logger.Logger, timeout time.Duration) *Controller {
	return &Controller{
		products: products,
		engine:   engine,
		log:      log.With("controller", "product"),
		timeout:  timeout,
	}
}
