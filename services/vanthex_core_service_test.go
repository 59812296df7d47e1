package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/logger"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	APIKey string
	Body   map[string]any
}

func newEngine(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*VanthexCoreService, *[]recordedRequest) {
	t.Helper()
	var (
		mu   sync.Mutex
		seen []recordedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path, APIKey: r.Header.Get("X-API-Key")}
		_ = json.NewDecoder(r.Body).Decode(&rec.Body)
		mu.Lock()
		seen = append(seen, rec)
		mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	svc, err := NewVanthexCoreService(VanthexConfig{
		BaseURL: srv.URL + "/api/",
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return svc, &seen
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestNewVanthexCoreServiceRequiresBaseURL(t *testing.T) {
	_, err := NewVanthexCoreService(VanthexConfig{}, nil)
	assert.Error(t, err)
}

func TestScaleCampaignSendsTypedRequest(t *testing.T) {
	svc, seen := newEngine(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"action":"scale","variants":["v1"],"budget":{"daily":40,"total":800,"spent":12}}`)
	})

	campaignID := uuid.New()
	res, err := svc.ScaleCampaign(context.Background(), ScaleInput{
		CampaignID:     campaignID,
		VariantIDs:     []string{"v1"},
		Action:         models.ScaleActionScale,
		BudgetIncrease: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"v1"}, res.Variants)
	require.NotNil(t, res.Budget)
	assert.Equal(t, float64(40), res.Budget.Daily)

	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/scaling-logic/scale", req.Path)
	assert.Equal(t, "test-key", req.APIKey)
	assert.Equal(t, campaignID.String(), req.Body["campaignId"])
	assert.Equal(t, "scale", req.Body["action"])
	assert.Equal(t, float64(20), req.Body["budgetIncrease"])
}

func TestEngineNon2xxIsUpstreamError(t *testing.T) {
	svc, _ := newEngine(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadGateway, `{"error":"supplier offline"}`)
	})

	_, err := svc.RerouteOrder(context.Background(), RerouteInput{StoreID: uuid.New(), ProductID: uuid.New()})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUpstream))
	assert.Equal(t, "Upstream service error", apperr.Message(err))

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
}

func TestEngineUnexpectedShapeIsUpstreamError(t *testing.T) {
	cases := map[string]struct {
		body string
		call func(svc *VanthexCoreService) error
	}{
		"not json": {
			body: `<html>oops</html>`,
			call: func(svc *VanthexCoreService) error {
				_, err := svc.GetCampaignPerformance(context.Background(), uuid.New())
				return err
			},
		},
		"object instead of list": {
			body: `{"products":[]}`,
			call: func(svc *VanthexCoreService) error {
				_, err := svc.DiscoverProducts(context.Background(), DiscoverInput{Limit: 5})
				return err
			},
		},
		"analysis without emotion": {
			body: `{"emotionalSpectrum":["joy"]}`,
			call: func(svc *VanthexCoreService) error {
				_, err := svc.AnalyzeProductEmotions(context.Background(), map[string]any{"title": "x"})
				return err
			},
		},
		"invalid budget": {
			body: `{"daily":0,"total":100,"spent":0}`,
			call: func(svc *VanthexCoreService) error {
				_, err := svc.UpdateCampaignBudget(context.Background(), uuid.New(), 50)
				return err
			},
		},
		"no variants": {
			body: `[]`,
			call: func(svc *VanthexCoreService) error {
				_, err := svc.LaunchCampaignVariants(context.Background(), &models.Campaign{}, 3)
				return err
			},
		},
		"unknown scale action": {
			body: `{"action":"explode"}`,
			call: func(svc *VanthexCoreService) error {
				_, err := svc.ScaleCampaign(context.Background(), ScaleInput{Action: models.ScaleActionScale})
				return err
			},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			svc, _ := newEngine(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, tc.body)
			})
			err := tc.call(svc)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.KindUpstream))
		})
	}
}

func TestDiscoverProductsPreservesOrder(t *testing.T) {
	svc, seen := newEngine(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[
			{"title":"B","source":{"platform":"tiktok","externalId":"2"}},
			{"title":"A","source":{"platform":"tiktok","externalId":"1"}}
		]`)
	})

	products, err := svc.DiscoverProducts(context.Background(), DiscoverInput{Category: "home", Limit: 2})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "B", products[0].Title)
	assert.Equal(t, "A", products[1].Title)
	assert.Equal(t, "/api/product-scraper/discover", (*seen)[0].Path)
	assert.Equal(t, "home", (*seen)[0].Body["category"])
}

func TestLaunchCampaignVariantsSendsCampaignAndCount(t *testing.T) {
	svc, seen := newEngine(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id":"v9","name":"Hook","creativeType":"video","creativeUrl":"https://cdn/x.mp4"}]`)
	})

	campaign := &models.Campaign{ID: uuid.New(), Name: "c"}
	variants, err := svc.LaunchCampaignVariants(context.Background(), campaign, 4)
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, models.CreativeVideo, variants[0].CreativeType)

	body := (*seen)[0].Body
	assert.Equal(t, float64(4), body["numVariants"])
	assert.Equal(t, campaign.ID.String(), body["campaign"].(map[string]any)["id"])
}

func TestSystemHealthUsesGet(t *testing.T) {
	svc, seen := newEngine(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"status":"ok","version":"2.1.0"}`)
	})

	health, err := svc.SystemHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, http.MethodGet, (*seen)[0].Method)
	assert.Equal(t, "/api/system/health", (*seen)[0].Path)
}

func TestEngineTransportErrorIsUpstream(t *testing.T) {
	svc, err := NewVanthexCoreService(VanthexConfig{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond}, nil)
	require.NoError(t, err)

	_, err = svc.SystemHealth(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUpstream))
}
