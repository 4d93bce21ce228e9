package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	apperrors "handoff-address/internal/errors"
	"handoff-address/internal/models"
	"handoff-address/internal/services"
	"handoff-address/internal/utils"

	"github.com/gin-gonic/gin"
)

// AddressService is the part of services.AddressService the handlers use.
type AddressService interface {
	ParseFreeText(ctx context.Context, input string, strict bool) models.CanonicalAddress
	ParseStructured(ctx context.Context, detail models.PlaceDetail, strict bool) models.CanonicalAddress
	Suggest(ctx context.Context, query string) (services.SuggestResult, error)
	Resolve(ctx context.Context, placeID string, strict bool) (models.CanonicalAddress, error)
	Status(ctx context.Context) models.StatusResponse
}

type AddressHandler struct {
	service       AddressService
	strictDefault bool
}

func NewAddressHandler(service AddressService, strictDefault bool) *AddressHandler {
	return &AddressHandler{service: service, strictDefault: strictDefault}
}

// ParseAddress godoc
// @Summary Parse a free-text address
// @Description Split a single typed line into components and validate it
// @Tags Addresses
// @Accept json
// @Produce json
// @Param request body models.ParseRequest true "Address text"
// @Security BearerAuth
// @Success 200 {object} models.CanonicalAddress
// @Failure 400 {object} map[string]interface{}
// @Router /addresses/parse [post]
func (h *AddressHandler) ParseAddress(c *gin.Context) {
	var req models.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(utils.WrapError(apperrors.ErrInvalidParameters, "bind parse request: %v", err))
		return
	}
	if strings.TrimSpace(req.Input) == "" {
		_ = c.Error(utils.WrapError(apperrors.ErrInvalidParameters, "input is blank"))
		return
	}

	addr := h.service.ParseFreeText(c.Request.Context(), req.Input, h.strict(req.Strict))
	c.JSON(http.StatusOK, addr)
}

// ParseStructured godoc
// @Summary Parse a place-detail record
// @Description Map provider address components onto a canonical address
// @Tags Addresses
// @Accept json
// @Produce json
// @Param request body models.StructuredParseRequest true "Place record"
// @Security BearerAuth
// @Success 200 {object} models.CanonicalAddress
// @Failure 400 {object} map[string]interface{}
// @Router /addresses/structured [post]
func (h *AddressHandler) ParseStructured(c *gin.Context) {
	var req models.StructuredParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(utils.WrapError(apperrors.ErrInvalidParameters, "bind structured request: %v", err))
		return
	}

	addr := h.service.ParseStructured(c.Request.Context(), req.Place, h.strict(req.Strict))
	c.JSON(http.StatusOK, addr)
}

// Suggestions godoc
// @Summary Autocomplete an address
// @Description Suggestions for a partial address; fallback_mode signals manual entry
// @Tags Addresses
// @Produce json
// @Param q query string true "Partial address"
// @Security BearerAuth
// @Success 200 {object} models.SuggestResponse
// @Failure 503 {object} map[string]interface{}
// @Router /addresses/suggestions [get]
func (h *AddressHandler) Suggestions(c *gin.Context) {
	res, err := h.service.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.SuggestResponse{
		Suggestions:  res.Suggestions,
		FallbackMode: res.FallbackMode,
	})
}

// ResolvePlace godoc
// @Summary Resolve a suggestion
// @Description Fetch the place record for a suggestion and parse it
// @Tags Addresses
// @Produce json
// @Param id path string true "Place ID"
// @Param strict query bool false "Apply format rules" default(true)
// @Security BearerAuth
// @Success 200 {object} models.CanonicalAddress
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /addresses/places/{id} [get]
func (h *AddressHandler) ResolvePlace(c *gin.Context) {
	strict := h.strictDefault
	if raw := c.Query("strict"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			_ = c.Error(utils.WrapError(apperrors.ErrInvalidParameters, "strict=%q", raw))
			return
		}
		strict = v
	}

	addr, err := h.service.Resolve(c.Request.Context(), c.Param("id"), strict)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, addr)
}

// Status godoc
// @Summary Autocomplete availability
// @Tags Addresses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.StatusResponse
// @Router /addresses/status [get]
func (h *AddressHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Status(c.Request.Context()))
}

func (h *AddressHandler) strict(requested *bool) bool {
	if requested == nil {
		return h.strictDefault
	}
	return *requested
}
