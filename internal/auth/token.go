// Package auth obtains and caches the bearer token used against the flight
// offers API.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ExpiryMargin is subtracted from the reported lifetime so a token is never
// handed out during its last minutes.
const ExpiryMargin = 300 * time.Second

var (
	ErrAuthentication     = errors.New("authentication failed")
	ErrMissingCredentials = errors.New("api key and secret are not configured")
)

// Credential is an access token with the moment it stops being served.
type Credential struct {
	AccessToken string
	ExpiresAt   time.Time
}

type Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
}

type Option func(*TokenCache)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *TokenCache) {
		c.now = now
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *TokenCache) {
		c.httpClient = client
	}
}

// TokenCache holds at most one Credential. Concurrent callers that find it
// missing or expired may each run an exchange; the last one to finish wins.
type TokenCache struct {
	oauth      clientcredentials.Config
	httpClient *http.Client
	now        func() time.Time

	mu   sync.Mutex
	cred *Credential
}

func NewTokenCache(cfg Config, opts ...Option) *TokenCache {
	c := &TokenCache{
		oauth: clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		httpClient: http.DefaultClient,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Token returns a valid access token, exchanging credentials when the cached
// one is absent or expired. Failures wrap ErrAuthentication and are not
// retried.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	if cred := c.current(); cred != nil && c.now().Before(cred.ExpiresAt) {
		return cred.AccessToken, nil
	}

	cred, err := c.exchange(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to obtain access token")
		return "", err
	}

	c.mu.Lock()
	c.cred = cred
	c.mu.Unlock()

	return cred.AccessToken, nil
}

// Credential returns a copy of the cached credential, if any.
func (c *TokenCache) Credential() (Credential, bool) {
	cred := c.current()
	if cred == nil {
		return Credential{}, false
	}
	return *cred, true
}

func (c *TokenCache) current() *Credential {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cred
}

func (c *TokenCache) exchange(ctx context.Context) (*Credential, error) {
	if c.oauth.ClientID == "" || c.oauth.ClientSecret == "" {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, ErrMissingCredentials)
	}

	issuedAt := c.now()

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	tok, err := c.oauth.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	expiresIn, err := expiresInSeconds(tok)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	cred := &Credential{
		AccessToken: tok.AccessToken,
		ExpiresAt:   issuedAt.Add(time.Duration(expiresIn)*time.Second - ExpiryMargin),
	}

	logrus.WithFields(logrus.Fields{
		"expires_in": expiresIn,
		"expires_at": cred.ExpiresAt.Format(time.RFC3339),
	}).Info("Obtained new access token")

	return cred, nil
}

// expiresInSeconds reads the raw expires_in field. The parsed Expiry on the
// token is based on the wall clock, which would bypass the injected clock.
func expiresInSeconds(tok *oauth2.Token) (int64, error) {
	var seconds int64

	switch v := tok.Extra("expires_in").(type) {
	case float64:
		seconds = int64(v)
	case int64:
		seconds = v
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed expires_in %q", v)
		}
		seconds = n
	default:
		return 0, errors.New("token response missing expires_in")
	}

	if seconds <= 0 {
		return 0, fmt.Errorf("non-positive expires_in %d", seconds)
	}

	return seconds, nil
}
