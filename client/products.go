package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
)

type TrendingFilter struct {
	Category string
	Source   string
	Limit    int
}

func (c *Client) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if p, ok := c.products.Get(id); ok {
		return &p, nil
	}
	version := c.products.Version()
	var p models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+id.String(), nil, nil, &p); err != nil {
		return nil, err
	}
	c.products.SetIfVersion(id, p, version)
	return &p, nil
}

func (c *Client) CreateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodPost, "/api/products", nil, p, &out); err != nil {
		return nil, err
	}
	c.products.Set(out.ID, out)
	return &out, nil
}

// GetTrendingProducts refreshes every returned product in the cache.
func (c *Client) GetTrendingProducts(ctx context.Context, f TrendingFilter) ([]models.Product, error) {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Source != "" {
		q.Set("source", f.Source)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	var out []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/trending", q, nil, &out); err != nil {
		return nil, err
	}
	for _, p := range out {
		c.products.Set(p.ID, p)
	}
	return out, nil
}

// AnalyzeProduct runs emotional analysis on a stored product and returns its
// updated record.
func (c *Client) AnalyzeProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	c.products.Invalidate(id)
	var out struct {
		Analysis models.EmotionalAnalysis `json:"analysis"`
		Product  *models.Product          `json:"product"`
	}
	body := models.AnalyzeProductRequest{ProductID: &id}
	if err := c.do(ctx, http.MethodPost, "/api/products/analyze", nil, body, &out); err != nil {
		return nil, err
	}
	if out.Product == nil {
		return c.GetProduct(ctx, id)
	}
	c.products.Set(id, *out.Product)
	return out.Product, nil
}
