package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	apperrors "handoff-address/internal/errors"
	"handoff-address/internal/models"
	"handoff-address/internal/repositories"
	"handoff-address/internal/transformers"
	"handoff-address/internal/utils"
	"handoff-address/pkg/logger"
	"handoff-address/pkg/places"
)

const (
	SourceFreeText   = "free_text"
	SourceStructured = "structured"

	defaultPlaceTTL      = 24 * time.Hour
	defaultSuggestionTTL = 10 * time.Minute
	defaultFallbackRetry = 5 * time.Minute
)

type AddressServiceConfig struct {
	Country       string
	PlaceTTL      time.Duration
	SuggestionTTL time.Duration
	// FallbackRetry is how long manual-entry mode holds before autocomplete
	// is attempted again.
	FallbackRetry time.Duration
}

// SuggestResult is the outcome of an autocomplete request. FallbackMode is
// set when the provider is unusable and the caller should offer manual entry.
type SuggestResult struct {
	Suggestions  []models.AddressSuggestion
	FallbackMode bool
}

type AddressService struct {
	trans    transformers.AddressTransformer
	provider places.Provider
	cache    repositories.PlaceCache
	cfg      AddressServiceConfig
	now      func() time.Time

	mu            sync.Mutex
	keyValid      *bool
	keyMessage    string
	fallback      bool
	fallbackSince time.Time
}

func NewAddressService(
	trans transformers.AddressTransformer,
	provider places.Provider,
	cache repositories.PlaceCache,
	cfg AddressServiceConfig,
) *AddressService {
	if cfg.PlaceTTL <= 0 {
		cfg.PlaceTTL = defaultPlaceTTL
	}
	if cfg.SuggestionTTL <= 0 {
		cfg.SuggestionTTL = defaultSuggestionTTL
	}
	if cfg.FallbackRetry <= 0 {
		cfg.FallbackRetry = defaultFallbackRetry
	}
	if cache == nil {
		cache = repositories.NewNoopPlaceCache()
	}
	return &AddressService{
		trans:    trans,
		provider: provider,
		cache:    cache,
		cfg:      cfg,
		now:      time.Now,
	}
}

// ParseFreeText parses a manually typed address. Defects are reported in
// the record, never as an error.
func (s *AddressService) ParseFreeText(ctx context.Context, input string, strict bool) models.CanonicalAddress {
	addr := s.trans.ParseFreeText(input, strict)
	s.recordParse(SourceFreeText, addr)
	return addr
}

// ParseStructured maps a provider place record onto a canonical address.
func (s *AddressService) ParseStructured(ctx context.Context, detail models.PlaceDetail, strict bool) models.CanonicalAddress {
	addr := s.trans.ParseStructured(detail, strict)
	s.recordParse(SourceStructured, addr)
	return addr
}

func (s *AddressService) recordParse(source string, addr models.CanonicalAddress) {
	utils.RecordAddressParse(source, addr.IsValid())
	if !addr.IsValid() {
		logger.GlobalLogger.Debugf("Address parsed with defects: source=%s, errors=%q", source, addr.ValidationErrors())
	}
}

// Suggest returns autocomplete predictions for a partial address. An API key
// problem is not an error: the service latches manual-entry mode and answers
// with an empty list until FallbackRetry has passed.
func (s *AddressService) Suggest(ctx context.Context, query string) (SuggestResult, error) {
	if utf8.RuneCountInString(strings.TrimSpace(query)) < places.MinQueryLength {
		return SuggestResult{Suggestions: []models.AddressSuggestion{}, FallbackMode: s.FallbackMode()}, nil
	}

	if s.holdingFallback() {
		return s.fallbackResult(), nil
	}

	if !s.keyChecked() {
		if status := s.checkKey(ctx); !status.Valid {
			return s.fallbackResult(), nil
		}
	}

	// A retry out of fallback mode must reach the provider.
	if !s.FallbackMode() {
		cached, err := s.cache.GetSuggestions(ctx, s.cfg.Country, query)
		if err != nil {
			logger.GlobalLogger.Errorf("Suggestion cache read failed: query=%q, error=%v", query, err)
		}
		if cached != nil {
			return SuggestResult{Suggestions: cached}, nil
		}
	}

	suggestions, err := s.provider.Autocomplete(ctx, query)
	if err != nil {
		if errors.Is(err, places.ErrAPIKey) {
			s.enterFallback(err.Error())
			return s.fallbackResult(), nil
		}
		return SuggestResult{}, utils.WrapError(err, "autocomplete %q", query)
	}

	s.clearFallback()
	if err := s.cache.SetSuggestions(ctx, s.cfg.Country, query, suggestions, s.cfg.SuggestionTTL); err != nil {
		logger.GlobalLogger.Errorf("Suggestion cache write failed: query=%q, error=%v", query, err)
	}
	return SuggestResult{Suggestions: suggestions}, nil
}

// Resolve fetches the place record for a suggestion, from cache when
// possible, and parses it.
func (s *AddressService) Resolve(ctx context.Context, placeID string, strict bool) (models.CanonicalAddress, error) {
	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return models.CanonicalAddress{}, utils.WrapError(apperrors.ErrInvalidParameters, "place id is required")
	}

	detail, err := s.cache.GetPlace(ctx, placeID)
	if err != nil {
		logger.GlobalLogger.Errorf("Place cache read failed: place_id=%s, error=%v", placeID, err)
	}

	if detail == nil {
		detail, err = s.provider.Details(ctx, placeID)
		if err != nil {
			if errors.Is(err, places.ErrAPIKey) {
				s.enterFallback(err.Error())
			}
			return models.CanonicalAddress{}, utils.WrapError(err, "resolve place %s", placeID)
		}
		if err := s.cache.SetPlace(ctx, detail, s.cfg.PlaceTTL); err != nil {
			logger.GlobalLogger.Errorf("Place cache write failed: place_id=%s, error=%v", placeID, err)
		}
	} else {
		logger.GlobalLogger.Debugf("Place cache hit: place_id=%s", placeID)
	}

	return s.ParseStructured(ctx, *detail, strict), nil
}

// Status reports whether the provider key is usable and whether manual
// entry is in force. The key is validated on first use only.
func (s *AddressService) Status(ctx context.Context) models.StatusResponse {
	if !s.keyChecked() {
		s.checkKey(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	resp := models.StatusResponse{FallbackMode: s.fallback, Message: s.keyMessage}
	if s.keyValid != nil {
		v := *s.keyValid
		resp.KeyValid = &v
	}
	return resp
}

// FallbackMode reports whether manual entry is currently in force.
func (s *AddressService) FallbackMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fallback
}

func (s *AddressService) checkKey(ctx context.Context) models.KeyStatus {
	status, err := s.provider.ValidateKey(ctx)
	if err != nil {
		logger.GlobalLogger.Errorf("Places key validation failed: %v", err)
		status.Valid = false
	}

	if !status.Valid {
		msg := status.Message
		if msg == "" {
			msg = "API key not configured"
		}
		s.enterFallback(msg)
		return status
	}

	s.mu.Lock()
	valid := true
	s.keyValid = &valid
	s.keyMessage = ""
	s.mu.Unlock()
	return status
}

func (s *AddressService) keyChecked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keyValid != nil
}

func (s *AddressService) holdingFallback() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fallback && s.now().Sub(s.fallbackSince) < s.cfg.FallbackRetry
}

func (s *AddressService) enterFallback(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	invalid := false
	s.keyValid = &invalid
	s.keyMessage = reason
	s.fallbackSince = s.now()
	if !s.fallback {
		s.fallback = true
		utils.RecordFallbackMode(true)
		logger.GlobalLogger.Printf("Switching to manual address entry: reason=%s", reason)
	}
}

func (s *AddressService) clearFallback() {
	s.mu.Lock()
	defer s.mu.Unlock()

	valid := true
	s.keyValid = &valid
	s.keyMessage = ""
	if s.fallback {
		s.fallback = false
		utils.RecordFallbackMode(false)
		logger.GlobalLogger.Printf("Address autocomplete available again")
	}
}

func (s *AddressService) fallbackResult() SuggestResult {
	return SuggestResult{Suggestions: []models.AddressSuggestion{}, FallbackMode: true}
}
