package proxy

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/dharmasatrya/flightfinder/internal/models"
)

const (
	defaultCurrency = "USD"
	maxResults      = "50"
)

// BuildParams maps a validated request onto the upstream query. Optional
// values that are blank, zero or unparseable are left out entirely.
func BuildParams(req models.SearchRequest) url.Values {
	params := url.Values{}
	params.Set("originLocationCode", req.Origin)
	params.Set("destinationLocationCode", req.Destination)
	params.Set("departureDate", req.DepartureDate)
	params.Set("adults", adults(req.Adults))
	params.Set("currencyCode", orDefault(req.Currency, defaultCurrency))
	params.Set("max", maxResults)

	if v := strings.TrimSpace(req.ReturnDate); v != "" {
		params.Set("returnDate", v)
	}
	if v, ok := positive(req.Children); ok {
		params.Set("children", v)
	}
	if v, ok := positive(req.Infants); ok {
		params.Set("infants", v)
	}
	if v := strings.TrimSpace(req.TravelClass); v != "" {
		params.Set("travelClass", v)
	}
	if nonStop(req.NonStop) {
		params.Set("nonStop", "true")
	}
	if v, ok := positive(req.MaxPrice); ok {
		params.Set("maxPrice", v)
	}

	return params
}

func adults(raw string) string {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return "1"
	}
	return strconv.Itoa(n)
}

func orDefault(raw, def string) string {
	if v := strings.TrimSpace(raw); v != "" {
		return v
	}
	return def
}

// positive reports raw (trimmed) when it parses as a number greater than zero.
func positive(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return "", false
	}
	return v, true
}

// nonStop treats any present flag as set unless it is an explicit false.
func nonStop(raw string) bool {
	v := strings.TrimSpace(raw)
	if v == "" || strings.EqualFold(v, "undefined") || strings.EqualFold(v, "null") {
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return true
}
