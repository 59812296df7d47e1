package alert_controller

import (
	"time"

	"github.com/jarradburge/optivana-vanthex-monorepo/logger"
	"github.com/jarradburge/optivana-vanthex-monorepo/repository"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
)

const (
	defaultAlertLimit = 20
	maxAlertLimit     = 100
)

type Controller struct {
	alerts  repository.AlertRepository
	engine  services.VanthexEngine
	log     *logger.Logger
	timeout time.Duration
}

func New(alerts repository.AlertRepository, engine services.VanthexEngine, log *logger.Logger, timeout time.Duration) *Controller {
	return &Controller{
		alerts:  alerts,
		engine:  engine,
		log:     log.With("controller", "alert"),
		timeout: timeout,
	}
}
