package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
)

type AlertFilter struct {
	StoreID *uuid.UUID
	Type    models.AlertType
	Limit   int
}

// Alerts are not cached; the list reflects the engine on every call.
func (c *Client) ListAlerts(ctx context.Context, f AlertFilter) ([]models.Alert, error) {
	q := url.Values{}
	if f.StoreID != nil {
		q.Set("storeId", f.StoreID.String())
	}
	if f.Type != "" {
		q.Set("type", string(f.Type))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	var out []models.Alert
	if err := c.do(ctx, http.MethodGet, "/api/system/alerts", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MarkAlertRead(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	var out models.Alert
	if err := c.do(ctx, http.MethodPut, "/api/system/alerts/"+id.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
