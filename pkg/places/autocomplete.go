package places

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"handoff-address/internal/models"
)

type autocompleteResponse struct {
	Predictions []models.AddressSuggestion `json:"predictions"`
}

// Autocomplete returns the provider's predictions for a partial address.
// Queries shorter than MinQueryLength yield no suggestions and no request.
func (c *Client) Autocomplete(ctx context.Context, query string) ([]models.AddressSuggestion, error) {
	if utf8.RuneCountInString(strings.TrimSpace(query)) < MinQueryLength {
		return []models.AddressSuggestion{}, nil
	}

	params := url.Values{}
	params.Set("input", query)
	params.Set("country", c.country)
	params.Set("types", strings.Join(c.types, "|"))

	var resp autocompleteResponse
	if err := c.getJSON(ctx, "autocomplete", "/places/autocomplete", params, &resp); err != nil {
		return nil, err
	}
	if resp.Predictions == nil {
		return []models.AddressSuggestion{}, nil
	}
	return resp.Predictions, nil
}
