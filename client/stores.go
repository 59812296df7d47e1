package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
)

func (c *Client) GetStore(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	if s, ok := c.stores.Get(id); ok {
		return &s, nil
	}
	version := c.stores.Version()
	var s models.Store
	if err := c.do(ctx, http.MethodGet, "/api/stores/"+id.String(), nil, nil, &s); err != nil {
		return nil, err
	}
	c.stores.SetIfVersion(id, s, version)
	return &s, nil
}

func (c *Client) InitiateStore(ctx context.Context, req models.InitiateStoreRequest) (*models.Store, error) {
	var s models.Store
	if err := c.do(ctx, http.MethodPost, "/api/stores/initiate", nil, req, &s); err != nil {
		return nil, err
	}
	c.stores.Set(s.ID, s)
	return &s, nil
}

func (c *Client) UpdateStore(ctx context.Context, id uuid.UUID, req models.UpdateStoreRequest) (*models.Store, error) {
	c.stores.Invalidate(id)
	var s models.Store
	if err := c.do(ctx, http.MethodPut, "/api/stores/"+id.String(), nil, req, &s); err != nil {
		return nil, err
	}
	c.stores.Set(id, s)
	return &s, nil
}

// GetStorePerformance refreshes the store's metrics, so the cached store is dropped.
func (c *Client) GetStorePerformance(ctx context.Context, id uuid.UUID, timeframe string) (*services.StorePerformanceReport, error) {
	c.stores.Invalidate(id)
	var q url.Values
	if timeframe != "" {
		q = url.Values{"timeframe": {timeframe}}
	}
	var report services.StorePerformanceReport
	if err := c.do(ctx, http.MethodGet, "/api/stores/"+id.String()+"/performance", q, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) AddProductsToStore(ctx context.Context, id uuid.UUID, productIDs []uuid.UUID) (*models.Store, error) {
	c.stores.Invalidate(id)
	var s models.Store
	body := models.StoreProductsRequest{ProductIDs: &productIDs}
	if err := c.do(ctx, http.MethodPut, "/api/stores/"+id.String()+"/products", nil, body, &s); err != nil {
		return nil, err
	}
	c.stores.Set(id, s)
	return &s, nil
}

func (c *Client) RemoveProductFromStore(ctx context.Context, id, productID uuid.UUID) (*models.Store, error) {
	c.stores.Invalidate(id)
	var s models.Store
	path := "/api/stores/" + id.String() + "/products/" + productID.String()
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, &s); err != nil {
		return nil, err
	}
	c.stores.Set(id, s)
	return &s, nil
}

func (c *Client) RerouteSupplier(ctx context.Context, storeID, productID uuid.UUID, orderID string) (*services.RerouteResult, error) {
	var out services.RerouteResult
	body := models.RerouteRequest{StoreID: &storeID, ProductID: &productID, OrderID: orderID}
	if err := c.do(ctx, http.MethodPut, "/api/stores/reroute", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
