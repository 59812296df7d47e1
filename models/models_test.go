package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreDefaultsAndValidate(t *testing.T) {
	s := &Store{Name: "  Glow Co ", Domain: "glow.example.com", UserID: uuid.New()}
	s.ApplyDefaults()

	assert.Equal(t, "Glow Co", s.Name)
	assert.Equal(t, StoreStatusDraft, s.Status)
	assert.Equal(t, StoreModeAutonomous, s.Mode)
	assert.Equal(t, "default", s.Settings.Theme)
	assert.NotNil(t, s.Settings.Integrations)
	assert.NotNil(t, s.Products)
	require.NoError(t, s.Validate())

	s.Mode = "robotic"
	assert.Error(t, s.Validate())
}

func TestUpdateStoreRequestApply(t *testing.T) {
	s := &Store{Name: "Old", Domain: "old.example.com"}
	s.ApplyDefaults()
	s.Settings.Integrations["shopify"] = "token"
	s.Settings.Integrations["stripe"] = "acct"

	theme := "dark"
	name := "New"
	req := UpdateStoreRequest{
		Name: &name,
		Settings: &StoreSettingsUpdate{
			Theme:        &theme,
			Integrations: map[string]interface{}{"stripe": nil, "klaviyo": "key"},
		},
	}
	assert.True(t, req.Apply(s))
	assert.Equal(t, "New", s.Name)
	assert.Equal(t, "dark", s.Settings.Theme)
	assert.Equal(t, "token", s.Settings.Integrations["shopify"])
	assert.Equal(t, "key", s.Settings.Integrations["klaviyo"])
	_, exists := s.Settings.Integrations["stripe"]
	assert.False(t, exists)

	assert.False(t, UpdateStoreRequest{}.Apply(s))
}

func TestProductValidate(t *testing.T) {
	valid := func() *Product {
		p := &Product{
			Title:       "Lamp",
			Description: "A lamp",
			Price:       12.5,
			Images:      StringList{"https://img.example.com/1.jpg"},
			Category:    "home",
			Source:      ProductSource{Platform: "aliexpress", ExternalID: "123"},
		}
		p.ApplyDefaults()
		return p
	}

	require.NoError(t, valid().Validate())

	p := valid()
	p.Price = -1
	assert.Error(t, p.Validate())

	p = valid()
	p.Images = StringList{}
	assert.Error(t, p.Validate())

	p = valid()
	p.Source.ExternalID = ""
	assert.Error(t, p.Validate())
}

func validCampaign() *Campaign {
	c := &Campaign{
		Name:      "Lamp - facebook",
		StoreID:   uuid.New(),
		ProductID: uuid.New(),
		Platform:  PlatformFacebook,
		Budget:    Budget{Daily: 10, Total: 100},
	}
	c.ApplyDefaults()
	return c
}

func TestCampaignDefaults(t *testing.T) {
	c := validCampaign()
	assert.Equal(t, CampaignStatusDraft, c.Status)
	assert.Equal(t, "broad", c.Targeting.AudienceType)
	assert.Equal(t, AgeRange{Min: 18, Max: 65}, c.Targeting.Demographics.AgeRange)
	assert.Equal(t, "all", c.Targeting.Demographics.Gender)
	assert.Zero(t, c.Budget.Spent)
	assert.Zero(t, c.Performance)
	require.NoError(t, c.Validate())
}

func TestCampaignValidate(t *testing.T) {
	cases := map[string]func(c *Campaign){
		"unknown platform": func(c *Campaign) { c.Platform = "myspace" },
		"daily below one":  func(c *Campaign) { c.Budget.Daily = 0.5 },
		"total below one":  func(c *Campaign) { c.Budget.Total = 0 },
		"negative spent":   func(c *Campaign) { c.Budget.Spent = -1 },
		"age under 13":     func(c *Campaign) { c.Targeting.Demographics.AgeRange.Min = 10 },
		"age inverted":     func(c *Campaign) { c.Targeting.Demographics.AgeRange = AgeRange{Min: 40, Max: 20} },
		"bad gender":       func(c *Campaign) { c.Targeting.Demographics.Gender = "other" },
		"bad audience":     func(c *Campaign) { c.Targeting.AudienceType = "everyone" },
		"duplicate variants": func(c *Campaign) {
			v := Variant{ID: "a", Name: "A", Status: VariantStatusDraft, CreativeType: CreativeImage, CreativeURL: "u"}
			c.Variants = VariantList{v, v}
		},
		"variant without url": func(c *Campaign) {
			c.Variants = VariantList{{ID: "a", Name: "A", Status: VariantStatusDraft, CreativeType: CreativeImage}}
		},
		"end before start": func(c *Campaign) {
			start := time.Now()
			end := start.Add(-time.Hour)
			c.StartDate, c.EndDate = &start, &end
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := validCampaign()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestCampaignSpentAboveTotalIsAccepted(t *testing.T) {
	c := validCampaign()
	c.Budget.Spent = c.Budget.Total + 50
	assert.NoError(t, c.Validate())
}

func TestPerformanceDerive(t *testing.T) {
	p := Performance{Impressions: 1000, Clicks: 50, Conversions: 5, Revenue: 250}
	p.Derive(100)
	assert.InDelta(t, 0.05, p.CTR, 1e-9)
	assert.InDelta(t, 0.1, p.ConversionRate, 1e-9)
	assert.InDelta(t, 2.5, p.ROAS, 1e-9)
	assert.InDelta(t, 20, p.CostPerConversion, 1e-9)

	var zero Performance
	zero.Derive(0)
	assert.Zero(t, zero)
}

func TestPerformanceFillRatiosKeepsEngineValues(t *testing.T) {
	p := Performance{Impressions: 1000, Clicks: 50, ROAS: 4}
	p.FillRatios(100)
	assert.InDelta(t, 0.05, p.CTR, 1e-9)
	assert.Equal(t, float64(4), p.ROAS)
}

func TestScaleCampaignRequestIDs(t *testing.T) {
	decode := func(body string) ScaleCampaignRequest {
		var req ScaleCampaignRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		return req
	}

	ids, err := decode(`{"variantIds":["a","b"],"action":"scale"}`).IDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	for _, body := range []string{
		`{"action":"scale"}`,
		`{"variantIds":[],"action":"scale"}`,
		`{"variantIds":"a","action":"scale"}`,
		`{"variantIds":[""],"action":"scale"}`,
	} {
		_, err := decode(body).IDs()
		assert.Error(t, err, body)
	}
}

func TestAlertMarkReadIsOneWay(t *testing.T) {
	a := &Alert{}
	first := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.True(t, a.MarkRead(first))
	assert.False(t, a.MarkRead(first.Add(time.Hour)))
	assert.True(t, a.Read)
	assert.Equal(t, first, *a.ReadAt)
}

func TestJSONColumnsScanStringAndBytes(t *testing.T) {
	var ids IDList
	id := uuid.New()
	require.NoError(t, ids.Scan(`["`+id.String()+`"]`))
	assert.True(t, ids.Contains(id))

	var variants VariantList
	require.NoError(t, variants.Scan([]byte(`[{"id":"v1","name":"A","status":"active"}]`)))
	assert.Equal(t, 0, variants.Find("v1"))
	assert.Equal(t, -1, variants.Find("v2"))

	var tags StringList
	require.NoError(t, tags.Scan(nil))
	assert.Empty(t, tags)
	assert.Error(t, tags.Scan(42))
}
