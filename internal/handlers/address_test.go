package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "handoff-address/internal/errors"
	"handoff-address/internal/handlers"
	"handoff-address/internal/middleware"
	"handoff-address/internal/models"
	"handoff-address/internal/repositories"
	"handoff-address/internal/services"
	"handoff-address/internal/transformers"
	"handoff-address/pkg/places"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubProvider struct {
	suggestions []models.AddressSuggestion
	autoErr     error
	detail      *models.PlaceDetail
	detailErr   error
	key         models.KeyStatus
}

func (p *stubProvider) Autocomplete(ctx context.Context, query string) ([]models.AddressSuggestion, error) {
	return p.suggestions, p.autoErr
}

func (p *stubProvider) Details(ctx context.Context, placeID string) (*models.PlaceDetail, error) {
	if p.detailErr != nil {
		return nil, p.detailErr
	}
	d := *p.detail
	d.PlaceID = placeID
	return &d, nil
}

func (p *stubProvider) ValidateKey(ctx context.Context) (models.KeyStatus, error) {
	return p.key, nil
}

func manhattanPlace() models.PlaceDetail {
	return models.PlaceDetail{
		FormattedAddress: "123 Main St, New York, NY 10001, USA",
		AddressComponents: []models.PlaceComponent{
			{Types: []string{models.TypeStreetNumber}, LongName: "123", ShortName: "123"},
			{Types: []string{models.TypeRoute}, LongName: "Main Street", ShortName: "Main St"},
			{Types: []string{models.TypeLocality}, LongName: "New York", ShortName: "New York"},
			{Types: []string{models.TypeAdminArea1}, LongName: "New York", ShortName: "NY"},
			{Types: []string{models.TypePostalCode}, LongName: "10001", ShortName: "10001"},
		},
	}
}

func newRouter(p *stubProvider) *gin.Engine {
	svc := services.NewAddressService(
		transformers.NewAddressTransformer(),
		p,
		repositories.NewNoopPlaceCache(),
		services.AddressServiceConfig{Country: "us"},
	)
	h := handlers.NewAddressHandler(svc, true)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	handlers.RegisterAddressRoutes(r.Group("/api/addresses"), h)
	return r
}

type addressResponse struct {
	Address1         string   `json:"address1"`
	Address2         string   `json:"address2"`
	StreetNumber     string   `json:"street_number"`
	State            string   `json:"state"`
	ZipCode          string   `json:"zip_code"`
	FormattedAddress string   `json:"formatted_address"`
	IsValid          bool     `json:"is_valid"`
	ValidationErrors []string `json:"validation_errors"`
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestAddressHandler_ParseAddress(t *testing.T) {
	r := newRouter(&stubProvider{})

	w := do(t, r, http.MethodPost, "/api/addresses/parse", map[string]interface{}{"input": "123 Main St, New York, NY 10001"})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[addressResponse](t, w)
	assert.True(t, resp.IsValid)
	assert.Equal(t, "123 Main St", resp.Address1)
	assert.Equal(t, "New York, NY 10001", resp.Address2)
	assert.Equal(t, "10001", resp.ZipCode)
	assert.Empty(t, resp.ValidationErrors)
}

func TestAddressHandler_ParseAddress_InvalidIsStill200(t *testing.T) {
	r := newRouter(&stubProvider{})

	w := do(t, r, http.MethodPost, "/api/addresses/parse", map[string]interface{}{"input": "garbage"})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[addressResponse](t, w)
	assert.False(t, resp.IsValid)
	assert.Equal(t, "garbage", resp.Address1)
	assert.Contains(t, resp.ValidationErrors, "Address format not recognized")
}

func TestAddressHandler_ParseAddress_MalformedZip(t *testing.T) {
	r := newRouter(&stubProvider{})

	w := do(t, r, http.MethodPost, "/api/addresses/parse", map[string]interface{}{"input": "123 Main St, Nowhere, CA 1234"})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[addressResponse](t, w)
	assert.False(t, resp.IsValid)
	assert.Equal(t, "123", resp.StreetNumber)
	assert.Contains(t, resp.ValidationErrors, `Could not parse state and ZIP code from "CA 1234"`)
	assert.Contains(t, resp.ValidationErrors, "ZIP code is required")
}

func TestAddressHandler_ParseAddress_BadRequest(t *testing.T) {
	r := newRouter(&stubProvider{})

	for name, body := range map[string]interface{}{
		"missing input": map[string]interface{}{},
		"blank input":   map[string]interface{}{"input": "   "},
		"wrong type":    map[string]interface{}{"input": 42},
	} {
		t.Run(name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/addresses/parse", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), apperrors.ErrCodeInvalidParameters)
		})
	}
}

func TestAddressHandler_ParseStructured(t *testing.T) {
	r := newRouter(&stubProvider{})
	place := manhattanPlace()
	place.AddressComponents[3].ShortName = "New York"

	strict := decode[addressResponse](t, do(t, r, http.MethodPost, "/api/addresses/structured", map[string]interface{}{"place": place}))
	lenient := decode[addressResponse](t, do(t, r, http.MethodPost, "/api/addresses/structured", map[string]interface{}{"place": place, "strict": false}))

	assert.Equal(t, []string{"State must be 2-letter abbreviation"}, strict.ValidationErrors)
	assert.True(t, lenient.IsValid)
	assert.Equal(t, "123 Main St, New York, NY 10001, USA", lenient.FormattedAddress)
}

func TestAddressHandler_Suggestions(t *testing.T) {
	r := newRouter(&stubProvider{
		key:         models.KeyStatus{Valid: true},
		suggestions: []models.AddressSuggestion{{Description: "123 Main St, New York, NY, USA", PlaceID: "ChIJ1"}},
	})

	w := do(t, r, http.MethodGet, "/api/addresses/suggestions?q=123+Main", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.SuggestResponse](t, w)
	assert.False(t, resp.FallbackMode)
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "ChIJ1", resp.Suggestions[0].PlaceID)
}

func TestAddressHandler_Suggestions_Fallback(t *testing.T) {
	r := newRouter(&stubProvider{key: models.KeyStatus{Valid: false, Message: "API key not configured"}})

	w := do(t, r, http.MethodGet, "/api/addresses/suggestions?q=123+Main", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.SuggestResponse](t, w)
	assert.True(t, resp.FallbackMode)
	assert.NotNil(t, resp.Suggestions)
	assert.Empty(t, resp.Suggestions)

	status := decode[models.StatusResponse](t, do(t, r, http.MethodGet, "/api/addresses/status", nil))
	assert.True(t, status.FallbackMode)
	require.NotNil(t, status.KeyValid)
	assert.False(t, *status.KeyValid)
}

func TestAddressHandler_Suggestions_UpstreamFailure(t *testing.T) {
	r := newRouter(&stubProvider{
		key:     models.KeyStatus{Valid: true},
		autoErr: &places.APIError{Endpoint: "autocomplete", StatusCode: 502, Message: "bad gateway"},
	})

	w := do(t, r, http.MethodGet, "/api/addresses/suggestions?q=123+Main", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), apperrors.ErrCodeServiceUnavailable)
}

func TestAddressHandler_ResolvePlace(t *testing.T) {
	place := manhattanPlace()
	r := newRouter(&stubProvider{detail: &place})

	w := do(t, r, http.MethodGet, "/api/addresses/places/ChIJ1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[addressResponse](t, w)
	assert.True(t, resp.IsValid)
	assert.Equal(t, "123 Main Street", resp.Address1)
	assert.Equal(t, "NY", resp.State)
}

func TestAddressHandler_ResolvePlace_Errors(t *testing.T) {
	place := manhattanPlace()

	w := do(t, newRouter(&stubProvider{detail: &place}), http.MethodGet, "/api/addresses/places/ChIJ1?strict=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, newRouter(&stubProvider{detailErr: places.ErrNoDetails}), http.MethodGet, "/api/addresses/places/ChIJ1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), apperrors.ErrCodePlaceNotFound)

	keyErr := &places.APIError{Endpoint: "details", StatusCode: 403, KeyError: true}
	w = do(t, newRouter(&stubProvider{detailErr: keyErr}), http.MethodGet, "/api/addresses/places/ChIJ1", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), apperrors.ErrCodeAutocompleteUnavailable)
}
