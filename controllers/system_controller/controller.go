package system_controller

import (
	"context"
	"time"

	"github.com/jarradburge/optivana-vanthex-monorepo/logger"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
	"github.com/redis/go-redis/v9"
)

// RedisPinger is satisfied by *redis.Client.
type RedisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type Deps struct {
	Environment string
	Version     string
	// Stats and Redis may be nil; the corresponding check reports "not_configured".
	Stats    services.PlatformStats
	Redis    RedisPinger
	Engine   services.VanthexEngine
	Activity *services.ActivityLogService
	Log      *logger.Logger
	// StartedAt defaults to the time New is called.
	StartedAt time.Time
}

type Controller struct {
	env       string
	version   string
	stats     services.PlatformStats
	redis     RedisPinger
	engine    services.VanthexEngine
	activity  *services.ActivityLogService
	log       *logger.Logger
	startedAt time.Time
	now       func() time.Time
}

func New(d Deps) *Controller {
	started := d.StartedAt
	if started.IsZero() {
		started = time.Now()
	}
	return &Controller{
		env:       d.Environment,
		version:   d.Version,
		stats:     d.Stats,
		redis:     d.Redis,
		engine:    d.Engine,
		activity:  d.Activity,
		log:       d.Log.With("controller", "system"),
		startedAt: started,
		now:       time.Now,
	}
}
