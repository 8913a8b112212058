package filter

import (
	"strings"

	"github.com/dharmasatrya/flightfinder/internal/models"
)

// Apply returns the offers matching every criterion in spec, in input order.
// The input slice is never modified.
func Apply(offers []models.FlightOffer, spec *models.FilterSpec) []models.FlightOffer {
	result := make([]models.FlightOffer, 0, len(offers))

	for _, o := range offers {
		if matches(o, spec) {
			result = append(result, o)
		}
	}

	return result
}

func matches(o models.FlightOffer, spec *models.FilterSpec) bool {
	if spec == nil {
		return true
	}

	if spec.MaxPrice != nil {
		price, err := o.TotalPrice()
		if err != nil || price > *spec.MaxPrice {
			return false
		}
	}

	if len(spec.Airlines) > 0 && !anyAirline(o.ValidatingAirlineCodes, spec.Airlines) {
		return false
	}

	if start, end, ok := spec.HourRange(); ok {
		dep, found := o.FirstDeparture()
		if !found {
			return false
		}
		hour := dep.Hour()
		if hour < start || hour >= end {
			return false
		}
	}

	return true
}

func anyAirline(codes, wanted []string) bool {
	for _, code := range codes {
		for _, w := range wanted {
			if strings.EqualFold(code, w) {
				return true
			}
		}
	}
	return false
}
