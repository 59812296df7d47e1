package campaign_controller_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/controllers/campaign_controller"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/repository"
	"github.com/jarradburge/optivana-vanthex-monorepo/repository/testutil"
	"github.com/jarradburge/optivana-vanthex-monorepo/services"
	"github.com/jarradburge/optivana-vanthex-monorepo/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	router    *gin.Engine
	engine    *mocks.VanthexEngine
	uploader  *mocks.CreativeUploader
	campaigns repository.CampaignRepository
	store     *models.Store
	product   *models.Product
}

func setup(t *testing.T, withUploader bool) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(t)
	f := &fixture{
		engine:    new(mocks.VanthexEngine),
		campaigns: repository.NewCampaignRepository(db),
	}
	stores := repository.NewStoreRepository(db)
	products := repository.NewProductRepository(db)

	ctx := context.Background()
	f.store = &models.Store{Name: "Shop", Domain: "shop.example.com", UserID: uuid.New()}
	require.NoError(t, stores.Create(ctx, f.store))
	f.product = &models.Product{
		Title:       "Desk Lamp",
		Description: "Warm light",
		Price:       30,
		Images:      models.StringList{"https://img.example.com/lamp.jpg"},
		Category:    "home",
		Source:      models.ProductSource{Platform: "amazon", ExternalID: "lamp-1"},
	}
	require.NoError(t, products.Create(ctx, f.product))

	deps := campaign_controller.Deps{
		Campaigns: f.campaigns,
		Stores:    stores,
		Products:  products,
		Engine:    f.engine,
		Log:       testutil.Logger(t),
		Timeout:   5 * time.Second,
	}
	if withUploader {
		f.uploader = new(mocks.CreativeUploader)
		deps.Uploader = f.uploader
		t.Cleanup(func() { f.uploader.AssertExpectations(t) })
	}
	ctl := campaign_controller.New(deps)

	f.router = gin.New()
	g := f.router.Group("/api/campaigns", testutil.AsUser(f.store.UserID))
	g.POST("/launch", ctl.LaunchCampaign)
	g.GET("/:campaignId", ctl.GetCampaign)
	g.PUT("/:campaignId/budget", ctl.UpdateCampaignBudget)
	g.PUT("/:campaignId/status", ctl.UpdateCampaignStatus)
	g.GET("/:campaignId/performance", ctl.GetCampaignPerformance)
	g.POST("/:campaignId/optimize", ctl.OptimizeCampaign)
	g.POST("/:campaignId/variants", ctl.CreateVariants)
	g.POST("/:campaignId/creatives", ctl.UploadCreative)
	g.PUT("/:campaignId/scale", ctl.ScaleCampaign)

	t.Cleanup(func() { f.engine.AssertExpectations(t) })
	return f
}

func variant(id string, status models.VariantStatus) models.Variant {
	return models.Variant{
		ID:           id,
		Name:         "Variant " + id,
		Status:       status,
		CreativeType: models.CreativeImage,
		CreativeURL:  "https://cdn.example.com/" + id + ".png",
	}
}

func (f *fixture) seedCampaign(t *testing.T, variants ...models.Variant) *models.Campaign {
	t.Helper()
	c := &models.Campaign{
		Name:      "Desk Lamp - facebook",
		StoreID:   f.store.ID,
		ProductID: f.product.ID,
		Platform:  models.PlatformFacebook,
		Budget:    models.Budget{Daily: 20, Total: 500, Spent: 40},
		Variants:  variants,
	}
	require.NoError(t, f.campaigns.Create(context.Background(), c))
	return c
}

func (f *fixture) reload(t *testing.T, id uuid.UUID) *models.Campaign {
	t.Helper()
	c, err := f.campaigns.GetByID(context.Background(), id)
	require.NoError(t, err)
	return c
}

func TestLaunchCampaignValidation(t *testing.T) {
	tests := []struct {
		name string
		body func(f *fixture) any
		code int
		want string
	}{
		{"missing budget", func(f *fixture) any {
			return map[string]any{"storeId": f.store.ID, "productId": f.product.ID, "platform": "facebook"}
		}, http.StatusBadRequest, "Store ID, Product ID, platform, and budget are required"},
		{"unknown platform", func(f *fixture) any {
			return map[string]any{"storeId": f.store.ID, "productId": f.product.ID, "platform": "myspace",
				"budget": map[string]any{"daily": 10, "total": 100}}
		}, http.StatusBadRequest, `Invalid platform: "myspace"`},
		{"daily below one", func(f *fixture) any {
			return map[string]any{"storeId": f.store.ID, "productId": f.product.ID, "platform": "tiktok",
				"budget": map[string]any{"daily": 0.5, "total": 100}}
		}, http.StatusBadRequest, "Daily budget must be at least 1"},
		{"unknown store", func(f *fixture) any {
			return map[string]any{"storeId": uuid.New(), "productId": f.product.ID, "platform": "tiktok",
				"budget": map[string]any{"daily": 10, "total": 100}}
		}, http.StatusNotFound, "Store not found"},
		{"unknown product", func(f *fixture) any {
			return map[string]any{"storeId": f.store.ID, "productId": uuid.New(), "platform": "tiktok",
				"budget": map[string]any{"daily": 10, "total": 100}}
		}, http.StatusNotFound, "Product not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t, false)
			w := testutil.Do(t, f.router, http.MethodPost, "/api/campaigns/launch", tt.body(f))
			require.Equal(t, tt.code, w.Code, w.Body.String())
			assert.Equal(t, tt.want, testutil.Decode(t, w, nil).Message)
		})
	}
}

func TestLaunchCampaign(t *testing.T) {
	f := setup(t, false)

	f.engine.On("LaunchCampaign", mock.Anything, mock.MatchedBy(func(in services.LaunchCampaignInput) bool {
		return in.Name == "Desk Lamp - instagram" && in.StoreID == f.store.ID && in.Budget.Daily == 15
	})).Return(&models.Campaign{
		Name:     "Desk Lamp - instagram",
		Platform: models.PlatformInstagram,
		Budget:   models.Budget{Daily: 15, Total: 300},
		Variants: models.VariantList{variant("v1", models.VariantStatusDraft)},
	}, nil).Once()

	w := testutil.Do(t, f.router, http.MethodPost, "/api/campaigns/launch", map[string]any{
		"storeId":   f.store.ID,
		"productId": f.product.ID,
		"platform":  "instagram",
		"budget":    map[string]any{"daily": 15, "total": 300},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Campaign
	testutil.Decode(t, w, &created)
	assert.Equal(t, models.CampaignStatusDraft, created.Status)
	assert.Equal(t, f.product.ID, created.ProductID)
	assert.Equal(t, "broad", created.Targeting.AudienceType)

	stored := f.reload(t, created.ID)
	require.Len(t, stored.Variants, 1)
	assert.Equal(t, models.Performance{}, stored.Performance)
}

func TestGetCampaignNotFound(t *testing.T) {
	f := setup(t, false)
	w := testutil.Do(t, f.router, http.MethodGet, "/api/campaigns/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Campaign not found", testutil.Decode(t, w, nil).Message)
}

func TestUpdateBudgetRejectsInvalidAmounts(t *testing.T) {
	f := setup(t, false)
	c := f.seedCampaign(t)
	path := "/api/campaigns/" + c.ID.String() + "/budget"

	for _, body := range []any{
		map[string]any{"budget": 0},
		map[string]any{"budget": -10},
		map[string]any{"budget": "100"},
		map[string]any{},
		`{"budget": }`,
	} {
		w := testutil.Do(t, f.router, http.MethodPut, path, body)
		require.Equal(t, http.StatusBadRequest, w.Code, "%v", body)
		assert.Equal(t, "Valid budget is required", testutil.Decode(t, w, nil).Message)
	}

	assert.Equal(t, c.Budget, f.reload(t, c.ID).Budget)
	f.engine.AssertNotCalled(t, "UpdateCampaignBudget", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBudget(t *testing.T) {
	f := setup(t, false)
	c := f.seedCampaign(t)

	f.engine.On("UpdateCampaignBudget", mock.Anything, c.ID, 50.0).
		Return(&models.Budget{Daily: 50, Total: 1500, Spent: 40}, nil).Once()

	w := testutil.Do(t, f.router, http.MethodPut, "/api/campaigns/"+c.ID.String()+"/budget", map[string]any{"budget": 50})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.Budget{Daily: 50, Total: 1500, Spent: 40}, f.reload(t, c.ID).Budget)
}

func TestUpdateCampaignStatus(t *testing.T) {
	f := setup(t, false)
	c := f.seedCampaign(t)
	path := "/api/campaigns/" + c.ID.String() + "/status"

	w := testutil.Do(t, f.router, http.MethodPut, path, map[string]any{"status": "paused"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cannot transition campaign from draft to paused", testutil.Decode(t, w, nil).Message)

	w = testutil.Do(t, f.router, http.MethodPut, path, map[string]any{"status": "active"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.CampaignStatusActive, f.reload(t, c.ID).Status)

	w = testutil.Do(t, f.router, http.MethodPut, path, map[string]any{"status": "draft"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScaleCampaignValidation(t *testing.T) {
	f := setup(t, false)
	c := f.seedCampaign(t, variant("v1", models.VariantStatusDraft), variant("v2", models.VariantStatusActive))
	path := "/api/campaigns/" + c.ID.String() + "/scale"

	tests := []struct {
		name string
		body any
		want string
	}{
		{"missing ids", map[string]any{"action": "scale"}, "Variant IDs array is required"},
		{"empty ids", map[string]any{"variantIds": []string{}, "action": "scale"}, "Variant IDs array is required"},
		{"ids not array", map[string]any{"variantIds": "v1", "action": "scale"}, "Variant IDs array is required"},
		{"bad action", map[string]any{"variantIds": []string{"v2"}, "action": "boost"}, "Valid action is required (scale, pause, or stop)"},
		{"missing action", map[string]any{"variantIds": []string{"v2"}}, "Valid action is required (scale, pause, or stop)"},
		{"negative increase", map[string]any{"variantIds": []string{"v2"}, "action": "scale", "budgetIncrease": -5}, "Budget increase cannot be negative"},
		{"foreign variant", map[string]any{"variantIds": []string{"v9"}, "action": "pause"}, "Variant v9 does not belong to this campaign"},
		{"illegal transition", map[string]any{"variantIds": []string{"v1"}, "action": "scale"}, "Cannot scale variant v1 in status draft"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.Do(t, f.router, http.MethodPut, path, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.want, testutil.Decode(t, w, nil).Message)
		})
	}
	f.engine.AssertNotCalled(t, "ScaleCampaign", mock.Anything, mock.Anything)
}

func TestScaleCampaign(t *testing.T) {
	f := setup(t, false)
	c := f.seedCampaign(t, variant("v1", models.VariantStatusActive), variant("v2", models.VariantStatusActive))

	f.engine.On("ScaleCampaign", mock.Anything, services.ScaleInput{
		CampaignID:     c.ID,
		VariantIDs:     []string{"v2"},
		Action:         models.ScaleActionScale,
		BudgetIncrease: 25,
	}).Return(&services.ScaleResult{
		CampaignID: c.ID,
		Action:     models.ScaleActionScale,
		Variants:   []string{"v2"},
		Budget:     &models.Budget{Daily: 25, Total: 500, Spent: 40},
	}, nil).Once()

	w := testutil.Do(t, f.router, http.MethodPut, "/api/campaigns/"+c.ID.String()+"/scale",
		map[string]any{"variantIds": []string{"v2"}, "action": "scale", "budgetIncrease": 25})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored := f.reload(t, c.ID)
	assert.Equal(t, models.VariantStatusActive, stored.Variants[0].Status)
	assert.Equal(t, models.VariantStatusWinner, stored.Variants[1].Status)
	assert.Equal(t, 25.0, stored.Budget.Daily)
}

func TestCreateVariants(t *testing.T) {
	f := setup(t, false)
	c := f.seedCampaign(t, variant("v1", models.VariantStatusActive))
	path := "/api/campaigns/" + c.ID.String() + "/variants"

	for _, body := range []any{map[string]any{"count": 0}, map[string]any{"count": 11}, map[string]any{"count": "3"}} {
		w := testutil.Do(t, f.router, http.MethodPost, path, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%v", body)
	}

	generated := []models.Variant{variant("v2", models.VariantStatusActive), variant("v3", ""), variant("v4", "")}
	f.engine.On("LaunchCampaignVariants", mock.Anything, mock.AnythingOfType("*models.Campaign"), 3).
		Return(generated, nil).Once()

	w := testutil.Do(t, f.router, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res campaign_controller.CreateVariantsResponse
	testutil.Decode(t, w, &res)
	require.Len(t, res.Variants, 3)
	assert.Equal(t, models.VariantStatusActive, res.Variants[0].Status)
	assert.Equal(t, models.VariantStatusDraft, res.Variants[1].Status)
	assert.Equal(t, models.VariantStatusDraft, res.Variants[2].Status)

	stored := f.reload(t, c.ID)
	require.Len(t, stored.Variants, 4)
	assert.Equal(t, "v1", stored.Variants[0].ID)
	assert.Equal(t, models.VariantStatusActive, stored.Variants[0].Status)
}

func TestVariantLifecycleThroughAPI(t *testing.T) {
	f := setup(t, false)
	c := f.seedCampaign(t)
	base := "/api/campaigns/" + c.ID.String()

	f.engine.On("LaunchCampaignVariants", mock.Anything, mock.Anything, 2).
		Return([]models.Variant{variant("v8", ""), variant("v9", models.VariantStatusActive)}, nil).Once()
	w := testutil.Do(t, f.router, http.MethodPost, base+"/variants", map[string]any{"count": 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = testutil.Do(t, f.router, http.MethodPut, base+"/status", map[string]any{"status": "active"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	for _, v := range f.reload(t, c.ID).Variants {
		assert.Equal(t, models.VariantStatusActive, v.Status, v.ID)
	}

	f.engine.On("ScaleCampaign", mock.Anything, mock.MatchedBy(func(in services.ScaleInput) bool {
		return in.Action == models.ScaleActionScale
	})).Return(&services.ScaleResult{CampaignID: c.ID, Action: models.ScaleActionScale, Variants: []string{"v9"}}, nil).Once()
	f.engine.On("ScaleCampaign", mock.Anything, mock.MatchedBy(func(in services.ScaleInput) bool {
		return in.Action == models.ScaleActionPause
	})).Return(&services.ScaleResult{CampaignID: c.ID, Action: models.ScaleActionPause, Variants: []string{"v8"}}, nil).Once()

	w = testutil.Do(t, f.router, http.MethodPut, base+"/scale", map[string]any{"variantIds": []string{"v9"}, "action": "scale"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = testutil.Do(t, f.router, http.MethodPut, base+"/scale", map[string]any{"variantIds": []string{"v8"}, "action": "pause"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored := f.reload(t, c.ID)
	assert.Equal(t, models.VariantStatusPaused, stored.Variants[0].Status)
	assert.Equal(t, models.VariantStatusWinner, stored.Variants[1].Status)
}

func TestCreateVariantsOnActiveCampaignStartActive(t *testing.T) {
	f := setup(t, false)
	c := f.seedCampaign(t)
	require.NoError(t, c.TransitionTo(models.CampaignStatusActive))
	require.NoError(t, f.campaigns.Save(context.Background(), c))

	f.engine.On("LaunchCampaignVariants", mock.Anything, mock.Anything, 1).
		Return([]models.Variant{variant("v1", models.VariantStatusDraft)}, nil).Once()
	w := testutil.Do(t, f.router, http.MethodPost, "/api/campaigns/"+c.ID.String()+"/variants", map[string]any{"count": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res campaign_controller.CreateVariantsResponse
	testutil.Decode(t, w, &res)
	require.Len(t, res.Variants, 1)
	assert.Equal(t, models.VariantStatusActive, res.Variants[0].Status)
	assert.Equal(t, models.VariantStatusActive, f.reload(t, c.ID).Variants[0].Status)
}

func TestCreateVariantsRejectsBadEngineBatches(t *testing.T) {
	tests := []struct {
		name  string
		batch []models.Variant
	}{
		{"duplicate within batch", []models.Variant{variant("v2", ""), variant("v2", "")}},
		{"launched as winner", []models.Variant{variant("v2", models.VariantStatusWinner)}},
		{"launched as paused", []models.Variant{variant("v2", models.VariantStatusPaused)}},
		{"missing creative", []models.Variant{{ID: "v2", Name: "No creative", CreativeType: models.CreativeImage}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t, false)
			c := f.seedCampaign(t, variant("v1", models.VariantStatusActive))
			f.engine.On("LaunchCampaignVariants", mock.Anything, mock.Anything, len(tt.batch)).
				Return(tt.batch, nil).Once()

			w := testutil.Do(t, f.router, http.MethodPost, "/api/campaigns/"+c.ID.String()+"/variants",
				map[string]any{"count": len(tt.batch)})
			require.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())
			assert.Equal(t, "Upstream service error", testutil.Decode(t, w, nil).Message)
			assert.Len(t, f.reload(t, c.ID).Variants, 1)
		})
	}
}

func TestCreateVariantsRejectsDuplicateIDs(t *testing.T) {
	f := setup(t, false)
	c := f.seedCampaign(t, variant("v1", models.VariantStatusActive))

	f.engine.On("LaunchCampaignVariants", mock.Anything, mock.Anything, 1).
		Return([]models.Variant{variant("v1", "")}, nil).Once()

	w := testutil.Do(t, f.router, http.MethodPost, "/api/campaigns/"+c.ID.String()+"/variants", map[string]any{"count": 1})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Upstream service error", testutil.Decode(t, w, nil).Message)
	assert.Len(t, f.reload(t, c.ID).Variants, 1)
}

func TestGetCampaignPerformanceRecordsMetrics(t *testing.T) {
	f := setup(t, false)
	c := f.seedCampaign(t, variant("v1", models.VariantStatusActive))

	f.engine.On("GetCampaignPerformance", mock.Anything, c.ID).Return(&services.CampaignPerformanceReport{
		CampaignID: c.ID,
		Spent:      100,
		Performance: models.Performance{
			Impressions: 10000, Clicks: 200, Conversions: 10, Revenue: 400,
		},
		Variants: []services.VariantPerformance{
			{ID: "v1", Performance: models.Performance{Impressions: 1000, Clicks: 50}},
		},
	}, nil).Once()

	w := testutil.Do(t, f.router, http.MethodGet, "/api/campaigns/"+c.ID.String()+"/performance", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored := f.reload(t, c.ID)
	assert.Equal(t, 100.0, stored.Budget.Spent)
	assert.InDelta(t, 0.02, stored.Performance.CTR, 1e-9)
	assert.InDelta(t, 4.0, stored.Performance.ROAS, 1e-9)
	assert.InDelta(t, 10.0, stored.Performance.CostPerConversion, 1e-9)
	assert.InDelta(t, 0.05, stored.Variants[0].Performance.CTR, 1e-9)
}

func TestOptimizeCampaign(t *testing.T) {
	f := setup(t, false)
	c := f.seedCampaign(t)

	f.engine.On("OptimizeCampaign", mock.Anything, c.ID).Return(&services.OptimizationResult{
		CampaignID:      c.ID,
		Recommendations: []services.Recommendation{{Type: "budget", Message: "Shift spend to v1"}},
	}, nil).Once()

	w := testutil.Do(t, f.router, http.MethodPost, "/api/campaigns/"+c.ID.String()+"/optimize", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func multipartCreative(t *testing.T, fields map[string]string, contentType string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="hero.png"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestUploadCreativeDisabled(t *testing.T) {
	f := setup(t, false)
	c := f.seedCampaign(t)

	body, ct := multipartCreative(t, nil, "image/png")
	req := httptest.NewRequest(http.MethodPost, "/api/campaigns/"+c.ID.String()+"/creatives", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Creative uploads are not configured", testutil.Decode(t, w, nil).Message)
}

func TestDisabledUploaderReportsErrUploadsDisabled(t *testing.T) {
	_, err := services.DisabledUploader{}.UploadCreative(context.Background(), strings.NewReader("x"), "a", "b", models.CreativeImage)
	assert.ErrorIs(t, err, services.ErrUploadsDisabled)
}

func TestUploadCreativeAttachesToVariant(t *testing.T) {
	f := setup(t, true)
	c := f.seedCampaign(t, variant("v1", models.VariantStatusDraft))

	f.uploader.On("UploadCreative", mock.Anything, mock.Anything, "hero", "optivana/campaigns/"+c.ID.String(), models.CreativeImage).
		Return("https://res.cloudinary.com/demo/hero.png", nil).Once()

	body, ct := multipartCreative(t, map[string]string{"variantId": "v1"}, "image/png")
	req := httptest.NewRequest(http.MethodPost, "/api/campaigns/"+c.ID.String()+"/creatives", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, "https://res.cloudinary.com/demo/hero.png", f.reload(t, c.ID).Variants[0].CreativeURL)
}

func TestUploadCreativeRejectsNonMedia(t *testing.T) {
	f := setup(t, true)
	c := f.seedCampaign(t)

	body, ct := multipartCreative(t, nil, "application/pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/campaigns/"+c.ID.String()+"/creatives", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Only image or video files are allowed", testutil.Decode(t, w, nil).Message)
}
