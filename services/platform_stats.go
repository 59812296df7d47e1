package services

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PlatformCounts struct {
	Stores          int64 `json:"stores"`
	ActiveStores    int64 `json:"activeStores"`
	Campaigns       int64 `json:"campaigns"`
	ActiveCampaigns int64 `json:"activeCampaigns"`
	Products        int64 `json:"products"`
	UnreadAlerts    int64 `json:"unreadAlerts"`
}

// PlatformStats reports database liveness and headline counts for the status page.
type PlatformStats interface {
	Ping(ctx context.Context) error
	Counts(ctx context.Context) (PlatformCounts, error)
}

type pgStats struct {
	pool *pgxpool.Pool
}

func NewPlatformStats(pool *pgxpool.Pool) PlatformStats {
	return &pgStats{pool: pool}
}

func (s *pgStats) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

const countsQuery = `
	SELECT
		(SELECT COUNT(*) FROM stores),
		(SELECT COUNT(*) FROM stores WHERE status = 'active'),
		(SELECT COUNT(*) FROM campaigns),
		(SELECT COUNT(*) FROM campaigns WHERE status = 'active'),
		(SELECT COUNT(*) FROM products),
		(SELECT COUNT(*) FROM alerts WHERE read = false)
`

func (s *pgStats) Counts(ctx context.Context) (PlatformCounts, error) {
	var c PlatformCounts
	err := s.pool.QueryRow(ctx, countsQuery).Scan(
		&c.Stores,
		&c.ActiveStores,
		&c.Campaigns,
		&c.ActiveCampaigns,
		&c.Products,
		&c.UnreadAlerts,
	)
	return c, err
}
