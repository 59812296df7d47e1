// Package mocks holds testify mocks for the service interfaces.
package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
	"github.com/stretchr/testify/mock"
)

type VanthexEngine struct {
	mock.Mock
}

var _ services.VanthexEngine = (*VanthexEngine)(nil)

func (m *VanthexEngine) CreateStore(ctx context.Context, in services.CreateStoreInput) (*models.Store, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*models.Store)
	return out, args.Error(1)
}

func (m *VanthexEngine) GetStorePerformance(ctx context.Context, storeID uuid.UUID, timeframe string) (*services.StorePerformanceReport, error) {
	args := m.Called(ctx, storeID, timeframe)
	out, _ := args.Get(0).(*services.StorePerformanceReport)
	return out, args.Error(1)
}

func (m *VanthexEngine) AddProductsToStore(ctx context.Context, storeID uuid.UUID, productIDs []uuid.UUID) (*services.StoreProductsResult, error) {
	args := m.Called(ctx, storeID, productIDs)
	out, _ := args.Get(0).(*services.StoreProductsResult)
	return out, args.Error(1)
}

func (m *VanthexEngine) RemoveProductFromStore(ctx context.Context, storeID, productID uuid.UUID) (*services.StoreProductsResult, error) {
	args := m.Called(ctx, storeID, productID)
	out, _ := args.Get(0).(*services.StoreProductsResult)
	return out, args.Error(1)
}

func (m *VanthexEngine) RerouteOrder(ctx context.Context, in services.RerouteInput) (*services.RerouteResult, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*services.RerouteResult)
	return out, args.Error(1)
}

func (m *VanthexEngine) DiscoverProducts(ctx context.Context, in services.DiscoverInput) ([]models.Product, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).([]models.Product)
	return out, args.Error(1)
}

func (m *VanthexEngine) AnalyzeProductEmotions(ctx context.Context, product any) (*models.EmotionalAnalysis, error) {
	args := m.Called(ctx, product)
	out, _ := args.Get(0).(*models.EmotionalAnalysis)
	return out, args.Error(1)
}

func (m *VanthexEngine) LaunchCampaign(ctx context.Context, in services.LaunchCampaignInput) (*models.Campaign, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*models.Campaign)
	return out, args.Error(1)
}

func (m *VanthexEngine) UpdateCampaignBudget(ctx context.Context, campaignID uuid.UUID, budget float64) (*models.Budget, error) {
	args := m.Called(ctx, campaignID, budget)
	out, _ := args.Get(0).(*models.Budget)
	return out, args.Error(1)
}

func (m *VanthexEngine) GetCampaignPerformance(ctx context.Context, campaignID uuid.UUID) (*services.CampaignPerformanceReport, error) {
	args := m.Called(ctx, campaignID)
	out, _ := args.Get(0).(*services.CampaignPerformanceReport)
	return out, args.Error(1)
}

func (m *VanthexEngine) LaunchCampaignVariants(ctx context.Context, campaign *models.Campaign, count int) ([]models.Variant, error) {
	args := m.Called(ctx, campaign, count)
	out, _ := args.Get(0).([]models.Variant)
	return out, args.Error(1)
}

func (m *VanthexEngine) OptimizeCampaign(ctx context.Context, campaignID uuid.UUID) (*services.OptimizationResult, error) {
	args := m.Called(ctx, campaignID)
	out, _ := args.Get(0).(*services.OptimizationResult)
	return out, args.Error(1)
}

func (m *VanthexEngine) ScaleCampaign(ctx context.Context, in services.ScaleInput) (*services.ScaleResult, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*services.ScaleResult)
	return out, args.Error(1)
}

func (m *VanthexEngine) ListAlerts(ctx context.Context, in services.ListAlertsInput) ([]models.Alert, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).([]models.Alert)
	return out, args.Error(1)
}

func (m *VanthexEngine) MarkAlertRead(ctx context.Context, alertID, userID uuid.UUID) (*services.AlertReadResult, error) {
	args := m.Called(ctx, alertID, userID)
	out, _ := args.Get(0).(*services.AlertReadResult)
	return out, args.Error(1)
}

func (m *VanthexEngine) SystemHealth(ctx context.Context) (*services.EngineHealth, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).(*services.EngineHealth)
	return out, args.Error(1)
}

type CreativeUploader struct {
	mock.Mock
}

var _ services.CreativeUploader = (*CreativeUploader)(nil)

func (m *CreativeUploader) UploadCreative(ctx context.Context, file io.Reader, filename, folder string, kind models.CreativeType) (string, error) {
	args := m.Called(ctx, file, filename, folder, kind)
	return args.String(0), args.Error(1)
}
