package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jarradburge/optivana-vanthex-monorepo/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Databases holds the GORM handle used by repositories and the raw pgx pool
// used for pings and aggregate queries.
type Databases struct {
	Gorm *gorm.DB
	Pool *pgxpool.Pool
}

func InitDB(cfg Config, log *logger.Logger) (*Databases, error) {
	pool, err := initPgx(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	log.Info("database connected", "driver", "pgx")

	gdb, err := initGORM(cfg)
	if err != nil {
		pool.Close()
		return nil, err
	}
	log.Info("database connected", "driver", "gorm")

	return &Databases{Gorm: gdb, Pool: pool}, nil
}

func initPgx(url string) (*pgxpool.Pool, error) {
	ctx, cancel := WithTimeout()
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return pool, nil
}

func initGORM(cfg Config) (*gorm.DB, error) {
	gormLogger := gormlogger.Default.LogMode(gormlogger.Warn)
	if cfg.IsProduction() {
		gormLogger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	gdb, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         gormLogger,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database with GORM: %w", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	return gdb, nil
}

func (d *Databases) Close(log *logger.Logger) {
	if d == nil {
		return
	}
	if d.Pool != nil {
		d.Pool.Close()
		log.Info("database connection closed", "driver", "pgx")
	}
	if d.Gorm != nil {
		if sqlDB, _ := d.Gorm.DB(); sqlDB != nil {
			_ = sqlDB.Close()
			log.Info("database connection closed", "driver", "gorm")
		}
	}
}

// Ping checks the pgx pool; used by the system status endpoint.
func (d *Databases) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

// WithTimeout returns a context with a 10s timeout (managed Postgres cold starts can be slow).
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// WithRequestTimeout bounds a request-scoped context by the default timeout.
func WithRequestTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, 10*time.Second)
}

func WithCustomTimeout(parent context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, duration)
}
