// Package proxy validates flight searches, authorizes them and forwards them to
// the upstream flight-offers API, translating every failure into *Error.
package proxy

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/flightfinder/internal/cache"
	"github.com/dharmasatrya/flightfinder/internal/models"
	"github.com/dharmasatrya/flightfinder/internal/providers"
)

type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type Service struct {
	tokens   TokenSource
	provider providers.Provider
	cache    cache.Cache
}

func NewService(tokens TokenSource, provider providers.Provider, c cache.Cache) *Service {
	if c == nil {
		c = cache.NewNoOpCache()
	}
	return &Service{
		tokens:   tokens,
		provider: provider,
		cache:    c,
	}
}

// Search runs one search and returns the upstream body verbatim. Errors are
// always *Error. Nothing is retried: a 401 from the search call is reported
// without refreshing the token.
func (s *Service) Search(ctx context.Context, req models.SearchRequest) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err.Error(), nil, err)
	}

	params := BuildParams(req)
	logger := logrus.WithFields(logrus.Fields{
		"origin":         req.Origin,
		"destination":    req.Destination,
		"departure_date": req.DepartureDate,
	})

	if body, found := s.cache.Get(ctx, params); found {
		logger.Debug("Serving flight offers from cache")
		return body, nil
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, authenticationError(err)
	}

	body, err := s.provider.Search(ctx, token, params)
	if err != nil {
		mapped := mapProviderError(err)
		logger.WithError(err).WithField("kind", mapped.Kind.String()).Error("Flight search failed")
		return nil, mapped
	}

	if err := s.cache.Set(ctx, params, body); err != nil {
		logger.WithError(err).Warn("Failed to cache flight offers")
	}

	return body, nil
}

func mapProviderError(err error) *Error {
	var httpErr *providers.HTTPError
	if !errors.As(err, &httpErr) {
		return upstreamError(err.Error(), err)
	}

	switch httpErr.StatusCode {
	case http.StatusBadRequest:
		return validationError(msgInvalidParams, rawDetails(httpErr.Body), err)
	case http.StatusUnauthorized:
		return authenticationError(err)
	default:
		return upstreamError(httpErr.Message(), err)
	}
}
