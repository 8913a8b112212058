package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultAmadeusAuthURL   = "https://test.api.amadeus.com/v1/security/oauth2/token"
	DefaultAmadeusFlightURL = "https://test.api.amadeus.com/v2/shopping/flight-offers"

	maxResponseBytes = 16 << 20
)

var ErrResponseTooLarge = fmt.Errorf("response body exceeds %d bytes", maxResponseBytes)

type AmadeusProvider struct {
	endpoint string
	client   *http.Client
}

func NewAmadeusProvider(endpoint string, client *http.Client) *AmadeusProvider {
	if endpoint == "" {
		endpoint = DefaultAmadeusFlightURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &AmadeusProvider{
		endpoint: endpoint,
		client:   client,
	}
}

func (p *AmadeusProvider) Name() string {
	return "amadeus"
}

// Search issues GET <endpoint>?<params> with the bearer token. 2xx bodies are
// returned verbatim; any other status becomes an *HTTPError.
func (p *AmadeusProvider) Search(ctx context.Context, token string, params url.Values) ([]byte, error) {
	u, err := url.Parse(p.endpoint)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, NewProviderError(p.Name(), fmt.Errorf("read response: %w", err))
	}
	if len(body) > maxResponseBytes {
		return nil, NewProviderError(p.Name(), ErrResponseTooLarge)
	}

	logrus.WithFields(logrus.Fields{
		"provider": p.Name(),
		"status":   resp.StatusCode,
		"elapsed":  time.Since(start).String(),
	}).Debug("Upstream search completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			Provider:   p.Name(),
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	return body, nil
}
