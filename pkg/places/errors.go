package places

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrAPIKey means the provider rejected our credentials or is not
	// configured. Callers switch to manual address entry.
	ErrAPIKey = errors.New("places: api key rejected")
	// ErrNoDetails means the provider answered without a result record.
	ErrNoDetails = errors.New("places: no address details found")

	ErrEmptyPlaceID = errors.New("places: place id is required")
)

const unknownErrorMessage = "Unknown error occurred"

// apiKeyIndicators are matched case-insensitively against provider messages.
var apiKeyIndicators = []string{
	"invalid",
	"denied",
	"api key",
	"key is not",
	"key appears to be",
	"request_denied",
	"invalid_request",
}

// APIError is a non-2xx answer from the provider.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
	KeyError   bool
}

func (e *APIError) Error() string {
	return fmt.Sprintf("places %s failed: status=%d, message=%s", e.Endpoint, e.StatusCode, e.Message)
}

// Is lets errors.Is(err, ErrAPIKey) match key related failures.
func (e *APIError) Is(target error) bool {
	return target == ErrAPIKey && e.KeyError
}

// retryable reports whether another attempt may succeed.
func (e *APIError) retryable() bool {
	return !e.KeyError && e.StatusCode >= http.StatusInternalServerError
}

// IsAPIKeyMessage reports whether a provider message points at a key or
// configuration problem.
func IsAPIKeyMessage(message string) bool {
	lower := strings.ToLower(message)
	for _, indicator := range apiKeyIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// errorBody is the union of error shapes the provider returns.
type errorBody struct {
	Error       interface{} `json:"error"`
	Message     interface{} `json:"message"`
	APIKeyError bool        `json:"api_key_error"`
}

// message picks the first usable text from error, message or error.message.
func (b errorBody) message() string {
	if s, ok := b.Error.(string); ok {
		return s
	}
	if s, ok := b.Message.(string); ok {
		return s
	}
	if m, ok := b.Error.(map[string]interface{}); ok {
		if s, ok := m["message"].(string); ok {
			return s
		}
	}
	return unknownErrorMessage
}

func newAPIError(endpoint string, status int, body errorBody) *APIError {
	msg := body.message()
	return &APIError{
		Endpoint:   endpoint,
		StatusCode: status,
		Message:    msg,
		KeyError: status == http.StatusForbidden ||
			status == http.StatusServiceUnavailable ||
			body.APIKeyError ||
			IsAPIKeyMessage(msg),
	}
}
