// Package places is the HTTP client for the address autocomplete provider.
// The provider proxies a geocoding service and exposes autocomplete, place
// details and key validation endpoints.
package places

import (
	"context"
	"net/http"
	"strings"
	"time"

	"handoff-address/internal/models"
)

const (
	// MinQueryLength is the shortest trimmed query sent for autocomplete.
	MinQueryLength = 3

	defaultMaxRetries     = 3
	defaultBackoff        = time.Second
	validateKeyTimeout    = 5 * time.Second
	defaultRequestTimeout = 10 * time.Second
)

// Provider is the autocomplete collaborator used by the address service.
type Provider interface {
	Autocomplete(ctx context.Context, query string) ([]models.AddressSuggestion, error)
	Details(ctx context.Context, placeID string) (*models.PlaceDetail, error)
	ValidateKey(ctx context.Context) (models.KeyStatus, error)
}

type Options struct {
	BaseURL    string
	APIKey     string
	Country    string
	Types      []string
	Timeout    time.Duration
	MaxRetries int
	// Backoff is multiplied by the attempt number between retries.
	Backoff    time.Duration
	HTTPClient *http.Client
}

// Client manages requests to the places provider
type Client struct {
	baseURL    string
	apiKey     string
	country    string
	types      []string
	maxRetries int
	backoff    time.Duration
	httpClient *http.Client
}

// NewClient creates a new places client
func NewClient(opts Options) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		country:    opts.Country,
		types:      opts.Types,
		maxRetries: opts.MaxRetries,
		backoff:    opts.Backoff,
		httpClient: opts.HTTPClient,
	}
	if c.maxRetries <= 0 {
		c.maxRetries = defaultMaxRetries
	}
	if c.backoff <= 0 {
		c.backoff = defaultBackoff
	}
	if c.httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultRequestTimeout
		}
		c.httpClient = &http.Client{Timeout: timeout}
	}
	return c
}

var _ Provider = (*Client)(nil)
