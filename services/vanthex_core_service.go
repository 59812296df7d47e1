package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/logger"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
)

const (
	pathCreateStore      = "/stores/create"
	pathStorePerformance = "/stores/performance"
	pathAddProducts      = "/stores/products/add"
	pathRemoveProduct    = "/stores/products/remove"
	pathReroute          = "/order-routing/reroute"
	pathDiscover         = "/product-scraper/discover"
	pathAnalyze          = "/emotional-targeting/analyze"
	pathLaunchCampaign   = "/campaigns/launch"
	pathCampaignBudget   = "/campaigns/budget"
	pathCampaignPerf     = "/campaigns/performance"
	pathLaunchVariants   = "/iteration-engine/launch-variants"
	pathOptimize         = "/iteration-engine/optimize"
	pathScale            = "/scaling-logic/scale"
	pathListAlerts       = "/alerts/list"
	pathReadAlert        = "/alerts/read"
	pathHealth           = "/system/health"
)

// VanthexEngine is the set of engine operations the controllers depend on.
type VanthexEngine interface {
	CreateStore(ctx context.Context, in CreateStoreInput) (*models.Store, error)
	GetStorePerformance(ctx context.Context, storeID uuid.UUID, timeframe string) (*StorePerformanceReport, error)
	AddProductsToStore(ctx context.Context, storeID uuid.UUID, productIDs []uuid.UUID) (*StoreProductsResult, error)
	RemoveProductFromStore(ctx context.Context, storeID, productID uuid.UUID) (*StoreProductsResult, error)
	RerouteOrder(ctx context.Context, in RerouteInput) (*RerouteResult, error)

	DiscoverProducts(ctx context.Context, in DiscoverInput) ([]models.Product, error)
	AnalyzeProductEmotions(ctx context.Context, product any) (*models.EmotionalAnalysis, error)

	LaunchCampaign(ctx context.Context, in LaunchCampaignInput) (*models.Campaign, error)
	UpdateCampaignBudget(ctx context.Context, campaignID uuid.UUID, budget float64) (*models.Budget, error)
	GetCampaignPerformance(ctx context.Context, campaignID uuid.UUID) (*CampaignPerformanceReport, error)
	LaunchCampaignVariants(ctx context.Context, campaign *models.Campaign, count int) ([]models.Variant, error)
	OptimizeCampaign(ctx context.Context, campaignID uuid.UUID) (*OptimizationResult, error)
	ScaleCampaign(ctx context.Context, in ScaleInput) (*ScaleResult, error)

	ListAlerts(ctx context.Context, in ListAlertsInput) ([]models.Alert, error)
	MarkAlertRead(ctx context.Context, alertID, userID uuid.UUID) (*AlertReadResult, error)

	SystemHealth(ctx context.Context) (*EngineHealth, error)
}

type VanthexConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// HTTPError is returned for non-2xx engine responses.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	body := e.Body
	if len(body) > 256 {
		body = body[:256] + "..."
	}
	return fmt.Sprintf("vanthex core http %d: %s", e.StatusCode, body)
}

type validator interface {
	validate() error
}

// VanthexCoreService is the single shared engine client. Its configuration is
// fixed at construction.
type VanthexCoreService struct {
	cfg        VanthexConfig
	httpClient *http.Client
	log        *logger.Logger
}

var _ VanthexEngine = (*VanthexCoreService)(nil)

func NewVanthexCoreService(cfg VanthexConfig, log *logger.Logger) (*VanthexCoreService, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("vanthex core base url is required")
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &VanthexCoreService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log.With("service", "VanthexCore"),
	}, nil
}

func (s *VanthexCoreService) doOnce(ctx context.Context, method, path string, body any) ([]byte, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, s.cfg.BaseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-Key", s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}

// call performs one engine round trip and decodes into out. Any failure,
// including a response that does not match out, is an upstream error.
func (s *VanthexCoreService) call(ctx context.Context, op, method, path string, body, out any) error {
	start := time.Now()
	raw, err := s.doOnce(ctx, method, path, body)
	if err == nil {
		dec := json.NewDecoder(bytes.NewReader(raw))
		if decErr := dec.Decode(out); decErr != nil {
			err = fmt.Errorf("decode response: %w", decErr)
		} else if v, ok := out.(validator); ok {
			if vErr := v.validate(); vErr != nil {
				err = fmt.Errorf("invalid response: %w", vErr)
			}
		}
	}
	if err != nil {
		s.log.Error("vanthex core call failed",
			"op", op,
			"path", path,
			"duration", time.Since(start).String(),
			"error", err,
		)
		return apperr.Upstream("vanthex."+op, err)
	}
	s.log.Debug("vanthex core call", "op", op, "path", path, "duration", time.Since(start).String())
	return nil
}

func (s *VanthexCoreService) CreateStore(ctx context.Context, in CreateStoreInput) (*models.Store, error) {
	var out models.Store
	if err := s.call(ctx, "CreateStore", http.MethodPost, pathCreateStore, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *VanthexCoreService) GetStorePerformance(ctx context.Context, storeID uuid.UUID, timeframe string) (*StorePerformanceReport, error) {
	body := map[string]any{"storeId": storeID, "timeframe": timeframe}
	var out StorePerformanceReport
	if err := s.call(ctx, "GetStorePerformance", http.MethodPost, pathStorePerformance, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *VanthexCoreService) AddProductsToStore(ctx context.Context, storeID uuid.UUID, productIDs []uuid.UUID) (*StoreProductsResult, error) {
	if productIDs == nil {
		productIDs = []uuid.UUID{}
	}
	body := map[string]any{"storeId": storeID, "productIds": productIDs}
	var out StoreProductsResult
	if err := s.call(ctx, "AddProductsToStore", http.MethodPost, pathAddProducts, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *VanthexCoreService) RemoveProductFromStore(ctx context.Context, storeID, productID uuid.UUID) (*StoreProductsResult, error) {
	body := map[string]any{"storeId": storeID, "productId": productID}
	var out StoreProductsResult
	if err := s.call(ctx, "RemoveProductFromStore", http.MethodPost, pathRemoveProduct, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *VanthexCoreService) RerouteOrder(ctx context.Context, in RerouteInput) (*RerouteResult, error) {
	var out RerouteResult
	if err := s.call(ctx, "RerouteOrder", http.MethodPost, pathReroute, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *VanthexCoreService) DiscoverProducts(ctx context.Context, in DiscoverInput) ([]models.Product, error) {
	var out []models.Product
	if err := s.call(ctx, "DiscoverProducts", http.MethodPost, pathDiscover, in, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Product{}
	}
	return out, nil
}

func (s *VanthexCoreService) AnalyzeProductEmotions(ctx context.Context, product any) (*models.EmotionalAnalysis, error) {
	var out EmotionalAnalysisResult
	if err := s.call(ctx, "AnalyzeProductEmotions", http.MethodPost, pathAnalyze, analysisEnvelope{Product: product}, &out); err != nil {
		return nil, err
	}
	analysis := models.EmotionalAnalysis(out)
	return &analysis, nil
}

func (s *VanthexCoreService) LaunchCampaign(ctx context.Context, in LaunchCampaignInput) (*models.Campaign, error) {
	if in.Variants == nil {
		in.Variants = []models.Variant{}
	}
	var out models.Campaign
	if err := s.call(ctx, "LaunchCampaign", http.MethodPost, pathLaunchCampaign, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *VanthexCoreService) UpdateCampaignBudget(ctx context.Context, campaignID uuid.UUID, budget float64) (*models.Budget, error) {
	var out models.Budget
	err := s.call(ctx, "UpdateCampaignBudget", http.MethodPost, pathCampaignBudget,
		budgetInput{CampaignID: campaignID, Budget: budget}, &out)
	if err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, apperr.Upstream("vanthex.UpdateCampaignBudget", err)
	}
	return &out, nil
}

func (s *VanthexCoreService) GetCampaignPerformance(ctx context.Context, campaignID uuid.UUID) (*CampaignPerformanceReport, error) {
	var out CampaignPerformanceReport
	if err := s.call(ctx, "GetCampaignPerformance", http.MethodPost, pathCampaignPerf, campaignRef{CampaignID: campaignID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *VanthexCoreService) LaunchCampaignVariants(ctx context.Context, campaign *models.Campaign, count int) ([]models.Variant, error) {
	var out []models.Variant
	err := s.call(ctx, "LaunchCampaignVariants", http.MethodPost, pathLaunchVariants,
		launchVariantsInput{Campaign: campaign, NumVariants: count}, &out)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, apperr.Upstream("vanthex.LaunchCampaignVariants", errors.New("engine returned no variants"))
	}
	return out, nil
}

func (s *VanthexCoreService) OptimizeCampaign(ctx context.Context, campaignID uuid.UUID) (*OptimizationResult, error) {
	var out OptimizationResult
	if err := s.call(ctx, "OptimizeCampaign", http.MethodPost, pathOptimize, campaignRef{CampaignID: campaignID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *VanthexCoreService) ScaleCampaign(ctx context.Context, in ScaleInput) (*ScaleResult, error) {
	var out ScaleResult
	if err := s.call(ctx, "ScaleCampaign", http.MethodPost, pathScale, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *VanthexCoreService) ListAlerts(ctx context.Context, in ListAlertsInput) ([]models.Alert, error) {
	var out []models.Alert
	if err := s.call(ctx, "ListAlerts", http.MethodPost, pathListAlerts, in, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Alert{}
	}
	return out, nil
}

func (s *VanthexCoreService) MarkAlertRead(ctx context.Context, alertID, userID uuid.UUID) (*AlertReadResult, error) {
	var out AlertReadResult
	err := s.call(ctx, "MarkAlertRead", http.MethodPost, pathReadAlert,
		alertReadInput{AlertID: alertID, UserID: userID}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *VanthexCoreService) SystemHealth(ctx context.Context) (*EngineHealth, error) {
	var out EngineHealth
	if err := s.call(ctx, "SystemHealth", http.MethodGet, pathHealth, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
