package repositories

import (
	"context"
	"time"

	"handoff-address/internal/models"
)

// PlaceCache stores provider answers so repeated lookups skip the network.
// A miss is reported as a nil result with a nil error.
type PlaceCache interface {
	GetPlace(ctx context.Context, placeID string) (*models.PlaceDetail, error)
	SetPlace(ctx context.Context, detail *models.PlaceDetail, expiration time.Duration) error
	GetSuggestions(ctx context.Context, country, query string) ([]models.AddressSuggestion, error)
	SetSuggestions(ctx context.Context, country, query string, suggestions []models.AddressSuggestion, expiration time.Duration) error
	Delete(ctx context.Context, placeID string) error
}
