package filter

import (
	"math"
	"sort"

	"github.com/dharmasatrya/flightfinder/internal/models"
	"github.com/dharmasatrya/flightfinder/pkg/currency"
)

const (
	bucketRounding = 100.0
	minBucketWidth = 100.0
	targetBuckets  = 10.0
)

// PriceBuckets builds the price histogram for offers. Bounds are rounded out
// to multiples of 100 and the bucket width is at least 100. Each bucket is
// half-open, so a price on a boundary belongs to the bucket starting there,
// and the last bucket always holds the largest price. Offers with unparseable prices
// are skipped.
func PriceBuckets(offers []models.FlightOffer) []models.PriceBucket {
	prices := parsePrices(offers)
	if len(prices) == 0 {
		return []models.PriceBucket{}
	}

	lowest, highest := prices[0], prices[0]
	for _, p := range prices[1:] {
		lowest = math.Min(lowest, p)
		highest = math.Max(highest, p)
	}

	minPrice := math.Floor(lowest/bucketRounding) * bucketRounding
	maxPrice := math.Ceil(highest/bucketRounding) * bucketRounding
	width := math.Max(minBucketWidth, math.Floor((maxPrice-minPrice)/targetBuckets))

	n := int(math.Floor((highest-minPrice)/width)) + 1
	code := offers[0].Price.Currency

	buckets := make([]models.PriceBucket, n)
	for i := range buckets {
		low := minPrice + float64(i)*width
		buckets[i] = models.PriceBucket{
			Low:   low,
			High:  low + width,
			Label: currency.Format(low, code) + "-" + currency.Number(low+width),
		}
	}

	for _, p := range prices {
		idx := int(math.Floor((p - minPrice) / width))
		if idx >= 0 && idx < n {
			buckets[idx].Count++
		}
	}

	return buckets
}

// Stats returns min, max and mean of the offer prices.
func Stats(offers []models.FlightOffer) models.PriceStats {
	prices := parsePrices(offers)
	if len(prices) == 0 {
		return models.PriceStats{}
	}

	stats := models.PriceStats{Min: prices[0], Max: prices[0]}
	sum := 0.0
	for _, p := range prices {
		stats.Min = math.Min(stats.Min, p)
		stats.Max = math.Max(stats.Max, p)
		sum += p
	}
	stats.Avg = sum / float64(len(prices))

	return stats
}

// Airlines counts offers per validating airline, most frequent first. Names
// come from the carriers dictionary and fall back to the code.
func Airlines(offers []models.FlightOffer, carriers map[string]string) []models.AirlineFacet {
	counts := make(map[string]int)
	for _, o := range offers {
		for _, code := range o.ValidatingAirlineCodes {
			counts[code]++
		}
	}

	facets := make([]models.AirlineFacet, 0, len(counts))
	for code, count := range counts {
		name := code
		if n, ok := carriers[code]; ok && n != "" {
			name = n
		}
		facets = append(facets, models.AirlineFacet{Code: code, Name: name, Count: count})
	}

	sort.Slice(facets, func(i, j int) bool {
		if facets[i].Count != facets[j].Count {
			return facets[i].Count > facets[j].Count
		}
		return facets[i].Code < facets[j].Code
	})

	return facets
}

func parsePrices(offers []models.FlightOffer) []float64 {
	prices := make([]float64, 0, len(offers))
	for _, o := range offers {
		if p, err := o.TotalPrice(); err == nil {
			prices = append(prices, p)
		}
	}
	return prices
}
