// Package airport answers autocomplete queries against a static airport
// dataset that is loaded lazily, once per process.
package airport

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/dharmasatrya/flightfinder/internal/models"
)

const (
	DefaultLimit = 10
	popularCount = 12
)

// Directory is a load-once cell over a Source. Concurrent callers during the
// first load share one in-flight Load, which is not cancelled when the caller
// that started it goes away; a failed load is not remembered and the next
// call tries again.
type Directory struct {
	source Source
	group  singleflight.Group

	mu       sync.RWMutex
	airports []models.Airport
}

func NewDirectory(source Source) *Directory {
	return &Directory{source: source}
}

func (d *Directory) load(ctx context.Context) ([]models.Airport, error) {
	d.mu.RLock()
	airports := d.airports
	d.mu.RUnlock()
	if airports != nil {
		return airports, nil
	}

	// Callers stop waiting on their own ctx; the shared load ignores cancellation.
	loadCtx := context.WithoutCancel(ctx)
	ch := d.group.DoChan("airports", func() (interface{}, error) {
		d.mu.RLock()
		loaded := d.airports
		d.mu.RUnlock()
		if loaded != nil {
			return loaded, nil
		}

		loaded, err := d.source.Load(loadCtx)
		if err != nil {
			return nil, err
		}

		d.mu.Lock()
		d.airports = loaded
		d.mu.Unlock()

		logrus.WithField("count", len(loaded)).Info("Airport dataset loaded")
		return loaded, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if res.Err != nil {
		logrus.WithError(res.Err).Error("Error loading airports")
		return nil, res.Err
	}

	return res.Val.([]models.Airport), nil
}

// Search matches query case-insensitively against IATA code, name, city,
// country and country code, keeping dataset order. A blank query returns the
// first limit airports. When the dataset cannot be loaded the result is empty
// and the error is returned.
func (d *Directory) Search(ctx context.Context, query string, limit int) ([]models.Airport, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	airports, err := d.load(ctx)
	if err != nil {
		return []models.Airport{}, err
	}

	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return head(airports, limit), nil
	}

	result := make([]models.Airport, 0, limit)
	for _, a := range airports {
		if matches(a, q) {
			result = append(result, a)
			if len(result) == limit {
				break
			}
		}
	}

	return result, nil
}

// ByCode looks an airport up by exact IATA code.
func (d *Directory) ByCode(ctx context.Context, code string) (models.Airport, bool, error) {
	airports, err := d.load(ctx)
	if err != nil {
		return models.Airport{}, false, err
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	for _, a := range airports {
		if a.IATA == code {
			return a, true, nil
		}
	}

	return models.Airport{}, false, nil
}

// Popular returns the leading entries of the dataset.
func (d *Directory) Popular(ctx context.Context) ([]models.Airport, error) {
	airports, err := d.load(ctx)
	if err != nil {
		return []models.Airport{}, err
	}
	return head(airports, popularCount), nil
}

func matches(a models.Airport, upperQuery string) bool {
	return strings.Contains(strings.ToUpper(a.IATA), upperQuery) ||
		strings.Contains(strings.ToUpper(a.Name), upperQuery) ||
		strings.Contains(strings.ToUpper(a.City), upperQuery) ||
		strings.Contains(strings.ToUpper(a.Country), upperQuery) ||
		strings.Contains(strings.ToUpper(a.CountryCode), upperQuery)
}

func head(airports []models.Airport, n int) []models.Airport {
	if n > len(airports) {
		n = len(airports)
	}
	out := make([]models.Airport, n)
	copy(out, airports[:n])
	return out
}
