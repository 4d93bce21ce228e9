package services

import (
	"context"
	"sync"
	"time"

	"handoff-address/internal/models"
)

type fakeProvider struct {
	mu sync.Mutex

	suggestions []models.AddressSuggestion
	autoErr     error
	detail      *models.PlaceDetail
	detailErr   error
	key         models.KeyStatus
	keyErr      error

	autoCalls   int
	detailCalls int
	keyCalls    int
}

func (p *fakeProvider) Autocomplete(ctx context.Context, query string) ([]models.AddressSuggestion, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.autoCalls++
	if p.autoErr != nil {
		return nil, p.autoErr
	}
	return p.suggestions, nil
}

func (p *fakeProvider) Details(ctx context.Context, placeID string) (*models.PlaceDetail, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.detailCalls++
	if p.detailErr != nil {
		return nil, p.detailErr
	}
	d := *p.detail
	d.PlaceID = placeID
	return &d, nil
}

func (p *fakeProvider) ValidateKey(ctx context.Context) (models.KeyStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keyCalls++
	return p.key, p.keyErr
}

type fakeCache struct {
	places      map[string]models.PlaceDetail
	suggestions map[string][]models.AddressSuggestion
	getErr      error
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		places:      map[string]models.PlaceDetail{},
		suggestions: map[string][]models.AddressSuggestion{},
	}
}

func (c *fakeCache) GetPlace(ctx context.Context, placeID string) (*models.PlaceDetail, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	d, ok := c.places[placeID]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (c *fakeCache) SetPlace(ctx context.Context, detail *models.PlaceDetail, expiration time.Duration) error {
	c.places[detail.PlaceID] = *detail
	return nil
}

func (c *fakeCache) GetSuggestions(ctx context.Context, country, query string) ([]models.AddressSuggestion, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.suggestions[country+"|"+query], nil
}

func (c *fakeCache) SetSuggestions(ctx context.Context, country, query string, suggestions []models.AddressSuggestion, expiration time.Duration) error {
	c.suggestions[country+"|"+query] = suggestions
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, placeID string) error {
	delete(c.places, placeID)
	return nil
}
