package errors_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	apperrors "handoff-address/internal/errors"
	"handoff-address/pkg/places"

	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"invalid parameters", fmt.Errorf("parse: %w", apperrors.ErrInvalidParameters), apperrors.ErrCodeInvalidParameters, http.StatusBadRequest},
		{"empty place id", places.ErrEmptyPlaceID, apperrors.ErrCodeInvalidParameters, http.StatusBadRequest},
		{"no details", fmt.Errorf("resolve: %w", places.ErrNoDetails), apperrors.ErrCodePlaceNotFound, http.StatusNotFound},
		{"api key", &places.APIError{Endpoint: "details", StatusCode: 403, KeyError: true}, apperrors.ErrCodeAutocompleteUnavailable, http.StatusServiceUnavailable},
		{"upstream 404", &places.APIError{Endpoint: "details", StatusCode: 404}, apperrors.ErrCodePlaceNotFound, http.StatusNotFound},
		{"upstream 500", fmt.Errorf("retries: %w", &places.APIError{Endpoint: "details", StatusCode: 500}), apperrors.ErrCodeServiceUnavailable, http.StatusServiceUnavailable},
		{"timeout", fmt.Errorf("places: %w", context.DeadlineExceeded), apperrors.ErrCodeServiceUnavailable, http.StatusServiceUnavailable},
		{"unknown", fmt.Errorf("boom"), apperrors.ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := apperrors.MapError(tc.err)
			assert.Equal(t, tc.code, appErr.Code)
			assert.Equal(t, tc.status, appErr.HTTPStatus)
			assert.ErrorIs(t, appErr, tc.err)
		})
	}
}

func TestMapError_PassesThroughAppError(t *testing.T) {
	original := apperrors.NewAppError("rate", apperrors.MsgRateLimited, apperrors.ErrCodeRateLimited, http.StatusTooManyRequests, nil)

	assert.Same(t, original, apperrors.MapError(fmt.Errorf("wrapped: %w", original)))
	assert.Nil(t, apperrors.MapError(nil))
	assert.Equal(t, apperrors.MsgRateLimited, original.Error())
}
