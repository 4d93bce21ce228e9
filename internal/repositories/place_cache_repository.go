package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"handoff-address/internal/models"
	"handoff-address/pkg/cache"
	"handoff-address/pkg/metrics"
)

type placeCache struct {
	store *cache.Store
}

func NewPlaceCache(store *cache.Store) PlaceCache {
	return &placeCache{store: store}
}

func (c *placeCache) GetPlace(ctx context.Context, placeID string) (*models.PlaceDetail, error) {
	var detail models.PlaceDetail
	err := c.store.Get(ctx, cache.PlaceKey(placeID), &detail)
	if errors.Is(err, cache.ErrMiss) {
		metrics.CacheMissesTotal.Inc()
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	metrics.CacheHitsTotal.Inc()
	return &detail, nil
}

func (c *placeCache) SetPlace(ctx context.Context, detail *models.PlaceDetail, expiration time.Duration) error {
	if detail == nil || detail.PlaceID == "" {
		return fmt.Errorf("place detail without place id cannot be cached")
	}
	return c.store.Set(ctx, cache.PlaceKey(detail.PlaceID), detail, expiration)
}

func (c *placeCache) GetSuggestions(ctx context.Context, country, query string) ([]models.AddressSuggestion, error) {
	var suggestions []models.AddressSuggestion
	err := c.store.Get(ctx, cache.SuggestionsKey(country, query), &suggestions)
	if errors.Is(err, cache.ErrMiss) {
		metrics.CacheMissesTotal.Inc()
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	metrics.CacheHitsTotal.Inc()
	if suggestions == nil {
		suggestions = []models.AddressSuggestion{}
	}
	return suggestions, nil
}

func (c *placeCache) SetSuggestions(ctx context.Context, country, query string, suggestions []models.AddressSuggestion, expiration time.Duration) error {
	if suggestions == nil {
		suggestions = []models.AddressSuggestion{}
	}
	return c.store.Set(ctx, cache.SuggestionsKey(country, query), suggestions, expiration)
}

func (c *placeCache) Delete(ctx context.Context, placeID string) error {
	return c.store.Delete(ctx, cache.PlaceKey(placeID))
}

// noopPlaceCache is used when Redis is disabled.
type noopPlaceCache struct{}

func NewNoopPlaceCache() PlaceCache {
	return noopPlaceCache{}
}

func (noopPlaceCache) GetPlace(context.Context, string) (*models.PlaceDetail, error) {
	return nil, nil
}

func (noopPlaceCache) SetPlace(context.Context, *models.PlaceDetail, time.Duration) error {
	return nil
}

func (noopPlaceCache) GetSuggestions(context.Context, string, string) ([]models.AddressSuggestion, error) {
	return nil, nil
}

func (noopPlaceCache) SetSuggestions(context.Context, string, string, []models.AddressSuggestion, time.Duration) error {
	return nil
}

func (noopPlaceCache) Delete(context.Context, string) error {
	return nil
}
