package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"handoff-address/internal/auth"
	"handoff-address/internal/models"
	"handoff-address/internal/repositories"
	"handoff-address/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

type noKeyProvider struct{}

func (noKeyProvider) Autocomplete(context.Context, string) ([]models.AddressSuggestion, error) {
	return nil, nil
}

func (noKeyProvider) Details(context.Context, string) (*models.PlaceDetail, error) {
	return nil, nil
}

func (noKeyProvider) ValidateKey(context.Context) (models.KeyStatus, error) {
	return models.KeyStatus{Valid: false, Message: "API key not configured"}, nil
}

func newTestApp(t *testing.T, mutate func(*config.Config)) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Places.BaseURL = "https://places.example.com"
	cfg.Places.Country = "us"
	cfg.Auth.JWTSecret = testSecret
	cfg.RateLimit.PerMinute = 600
	cfg.RateLimit.Burst = 100
	if mutate != nil {
		mutate(cfg)
	}

	app := &App{Config: cfg}
	app.build(noKeyProvider{}, repositories.NewNoopPlaceCache())
	t.Cleanup(app.cleanup)
	return app
}

func serve(app *App, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func TestApp_Health(t *testing.T) {
	app := newTestApp(t, nil)

	w := serve(app, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","redis":"disabled"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestApp_AddressesRequireAuth(t *testing.T) {
	app := newTestApp(t, nil)
	body := `{"input":"123 Main St, New York, NY 10001"}`

	req := httptest.NewRequest(http.MethodPost, "/api/addresses/parse", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	assert.Equal(t, http.StatusUnauthorized, serve(app, req).Code)

	token, err := auth.GenerateJWT("user-1", "buyer@example.com", "authenticated", testSecret, time.Hour)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPost, "/api/addresses/parse", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token.Token)
	w := serve(app, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["is_valid"])
}

func TestApp_AuthDisabled(t *testing.T) {
	app := newTestApp(t, func(cfg *config.Config) { cfg.Auth.Disabled = true })

	w := serve(app, httptest.NewRequest(http.MethodGet, "/api/addresses/status", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var status models.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.FallbackMode)
	assert.Equal(t, "API key not configured", status.Message)
}

func TestApp_StrictDefaultFromConfig(t *testing.T) {
	lenient := false
	app := newTestApp(t, func(cfg *config.Config) {
		cfg.Auth.Disabled = true
		cfg.Address.Strict = &lenient
	})

	body := `{"place":{"formatted_address":"1 A St","address_components":[
		{"types":["street_number"],"long_name":"1","short_name":"1"},
		{"types":["route"],"long_name":"A","short_name":"A"},
		{"types":["locality"],"long_name":"Albany","short_name":"Albany"},
		{"types":["administrative_area_level_1"],"long_name":"New York","short_name":"New York"},
		{"types":["postal_code"],"long_name":"12207","short_name":"12207"}]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/addresses/structured", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := serve(app, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["is_valid"])
}
