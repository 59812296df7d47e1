package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRequiresToken(t *testing.T) {
	t.Setenv("OPTIVANA_TOKEN", "")
	_, err := runCLI(t, "store", "get", uuid.NewString())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token")
}

func TestStoreGetPrintsStore(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stores/"+id.String(), r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Store fetched successfully",
			"data":    models.Store{ID: id, Name: "CLI Store", Domain: "cli.example.com"},
		})
	}))
	defer srv.Close()

	out, err := runCLI(t, "--api-url", srv.URL, "--token", "secret", "store", "get", id.String())
	require.NoError(t, err)

	var got models.Store
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "CLI Store", got.Name)
}

func TestCampaignScaleSendsVariants(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		var req models.ScaleCampaignRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		ids, err := req.IDs()
		assert.NoError(t, err)
		assert.Equal(t, []string{"v1", "v2"}, ids)
		assert.Equal(t, models.ScaleActionStop, req.Action)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Campaign scaled successfully",
			"data": map[string]any{
				"campaign": models.Campaign{ID: id},
				"result":   map[string]any{"campaignId": id, "action": "stop", "variants": ids},
			},
		})
	}))
	defer srv.Close()

	out, err := runCLI(t, "--api-url", srv.URL, "--token", "secret",
		"campaign", "scale", id.String(), "--action", "stop", "--variant", "v1", "--variant", "v2")
	require.NoError(t, err)
	assert.Contains(t, out, `"action": "stop"`)
}

func TestAlertsReadSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "Alert not found"})
	}))
	defer srv.Close()

	_, err := runCLI(t, "--api-url", srv.URL, "--token", "secret", "alerts", "read", uuid.NewString())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Alert not found")
}
