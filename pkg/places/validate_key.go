package places

import (
	"context"
	"errors"

	"handoff-address/internal/models"
)

// ValidateKey asks the provider whether its key is configured and accepted.
// A rejected or unreachable provider is reported as an invalid key; the
// returned error carries the cause.
func (c *Client) ValidateKey(ctx context.Context) (models.KeyStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, validateKeyTimeout)
	defer cancel()

	var status models.KeyStatus
	if err := c.getJSON(ctx, "validate_key", "/places/validate-key", nil, &status); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return models.KeyStatus{Message: "validation timed out"}, err
		}
		return models.KeyStatus{Message: "validation request failed"}, err
	}
	return status, nil
}
