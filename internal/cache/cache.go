package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
)

const keyPrefix = "flight-offers:"

// Cache stores upstream search bodies keyed by the mapped upstream query.
// A miss and a backend failure look the same to callers.
type Cache interface {
	Get(ctx context.Context, params url.Values) ([]byte, bool)
	Set(ctx context.Context, params url.Values, body []byte) error
	Close() error
}

// Key hashes the canonical (sorted) encoding of params.
func Key(params url.Values) string {
	sum := sha256.Sum256([]byte(params.Encode()))
	return keyPrefix + hex.EncodeToString(sum[:])
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (NoOpCache) Get(context.Context, url.Values) ([]byte, bool) { return nil, false }

func (NoOpCache) Set(context.Context, url.Values, []byte) error { return nil }

func (NoOpCache) Close() error { return nil }
