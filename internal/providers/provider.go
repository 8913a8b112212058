package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Provider performs one flight-offer search against an upstream API and
// returns the response body untouched.
type Provider interface {
	Name() string
	Search(ctx context.Context, token string, params url.Values) ([]byte, error)
}

// HTTPError reports a non-2xx upstream response.
type HTTPError struct {
	Provider   string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: upstream responded with status %d", e.Provider, e.StatusCode)
}

// ProviderError wraps transport-level failures (DNS, connection, decoding).
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Provider + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Err:      err,
	}
}

func statusText(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return fmt.Sprintf("status %d", code)
}

type apiErrorBody struct {
	Errors []struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

// Message extracts a human-readable reason from the upstream error body,
// falling back to the HTTP status text.
func (e *HTTPError) Message() string {
	var body apiErrorBody
	if err := json.Unmarshal(e.Body, &body); err == nil && len(body.Errors) > 0 {
		first := body.Errors[0]
		if first.Detail != "" {
			return first.Detail
		}
		if first.Title != "" {
			return first.Title
		}
	}
	return statusText(e.StatusCode)
}
