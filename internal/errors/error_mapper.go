package errors

import (
	"context"
	stderrors "errors"
	"net/http"

	"handoff-address/pkg/places"
)

// ErrInvalidParameters marks caller input the service refuses to process.
var ErrInvalidParameters = stderrors.New("invalid parameters")

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	technicalMessage := err.Error()
	mapped := func(userMessage, code string, status int) *AppError {
		return NewAppError(technicalMessage, userMessage, code, status, err)
	}

	var apiErr *places.APIError
	switch {
	case stderrors.Is(err, ErrInvalidParameters), stderrors.Is(err, places.ErrEmptyPlaceID):
		return mapped(MsgInvalidParameters, ErrCodeInvalidParameters, http.StatusBadRequest)
	case stderrors.Is(err, places.ErrNoDetails):
		return mapped(MsgPlaceNotFound, ErrCodePlaceNotFound, http.StatusNotFound)
	case stderrors.Is(err, places.ErrAPIKey):
		return mapped(MsgAutocompleteUnavailable, ErrCodeAutocompleteUnavailable, http.StatusServiceUnavailable)
	case stderrors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound:
		return mapped(MsgPlaceNotFound, ErrCodePlaceNotFound, http.StatusNotFound)
	case stderrors.As(err, &apiErr), stderrors.Is(err, context.DeadlineExceeded):
		return mapped(MsgServiceUnavailable, ErrCodeServiceUnavailable, http.StatusServiceUnavailable)
	default:
		return mapped(MsgInternalError, ErrCodeInternal, http.StatusInternalServerError)
	}
}
