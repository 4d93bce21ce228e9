package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"handoff-address/pkg/logger"
	"handoff-address/pkg/metrics"
)

// getJSON issues a GET against the provider and decodes a 2xx body into out.
// Transport failures and 5xx answers are retried with a linear backoff; key
// errors, other 4xx answers and undecodable bodies are returned at once.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, query url.Values, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	start := time.Now()
	defer func() {
		metrics.PlacesRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		retry, err := c.do(ctx, endpoint, reqURL, out)
		if err == nil {
			metrics.PlacesRequestsTotal.WithLabelValues(endpoint, "ok").Inc()
			return nil
		}
		lastErr = err

		if !retry {
			metrics.PlacesRequestsTotal.WithLabelValues(endpoint, outcome(err)).Inc()
			logger.GlobalLogger.Errorf("Places request failed: endpoint=%s, error=%v", endpoint, err)
			return err
		}

		logger.GlobalLogger.Errorf("Places request failed (attempt %d/%d): endpoint=%s, error=%v", attempt, c.maxRetries, endpoint, err)
		if attempt == c.maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			metrics.PlacesRequestsTotal.WithLabelValues(endpoint, "error").Inc()
			return fmt.Errorf("places %s cancelled: %w", endpoint, ctx.Err())
		case <-time.After(time.Duration(attempt) * c.backoff):
		}
	}

	metrics.PlacesRequestsTotal.WithLabelValues(endpoint, outcome(lastErr)).Inc()
	return fmt.Errorf("places %s failed after %d attempts: %w", endpoint, c.maxRetries, lastErr)
}

// do performs a single attempt and reports whether a failure is worth retrying.
func (c *Client) do(ctx context.Context, endpoint, reqURL string, out interface{}) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create %s request: %w", endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logger.GlobalLogger.Debugf("Places request: endpoint=%s, url=%s", endpoint, reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return false, fmt.Errorf("places %s cancelled: %w", endpoint, ctx.Err())
		}
		return true, fmt.Errorf("failed to send %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return true, fmt.Errorf("failed to read %s response body: status=%s: %w", endpoint, resp.Status, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		if err := json.Unmarshal(body, &eb); err != nil {
			eb = errorBody{Error: "Unknown error"}
		}
		apiErr := newAPIError(endpoint, resp.StatusCode, eb)
		return apiErr.retryable(), apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return false, fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return false, nil
}

func outcome(err error) string {
	if errors.Is(err, ErrAPIKey) {
		return "api_key_error"
	}
	return "error"
}
