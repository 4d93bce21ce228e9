package places

import (
	"context"
	"net/url"
	"strings"

	"handoff-address/internal/models"
)

type detailsResponse struct {
	Result *struct {
		FormattedAddress  string                  `json:"formatted_address"`
		AddressComponents []models.PlaceComponent `json:"address_components"`
		Geometry          *struct {
			Location *models.LatLng `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}

// Details fetches the structured record for one suggestion.
func (c *Client) Details(ctx context.Context, placeID string) (*models.PlaceDetail, error) {
	if strings.TrimSpace(placeID) == "" {
		return nil, ErrEmptyPlaceID
	}

	params := url.Values{}
	params.Set("place_id", placeID)

	var resp detailsResponse
	if err := c.getJSON(ctx, "details", "/places/details", params, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, ErrNoDetails
	}

	detail := &models.PlaceDetail{
		PlaceID:           placeID,
		FormattedAddress:  resp.Result.FormattedAddress,
		AddressComponents: resp.Result.AddressComponents,
	}
	if resp.Result.Geometry != nil && resp.Result.Geometry.Location != nil {
		loc := *resp.Result.Geometry.Location
		detail.Location = &loc
	}
	return detail, nil
}
