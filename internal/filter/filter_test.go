package filter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/flightfinder/internal/models"
)

func offer(id, price string, departAt string, airlines ...string) models.FlightOffer {
	return models.FlightOffer{
		Type: "flight-offer",
		ID:   id,
		Itineraries: []models.Itinerary{
			{
				Duration: "PT2H",
				Segments: []models.Segment{
					{
						Departure:   models.Endpoint{IATACode: "JFK", At: departAt},
						Arrival:     models.Endpoint{IATACode: "LHR", At: "2026-11-02T08:00:00"},
						CarrierCode: "BA",
						Number:      "178",
					},
				},
			},
		},
		Price:                  models.Price{Currency: "USD", Total: price, GrandTotal: price},
		ValidatingAirlineCodes: airlines,
	}
}

func ids(offers []models.FlightOffer) []string {
	out := make([]string, len(offers))
	for i, o := range offers {
		out[i] = o.ID
	}
	return out
}

func float(v float64) *float64 { return &v }

func TestApply_MaxPrice(t *testing.T) {
	offers := []models.FlightOffer{
		offer("1", "100.00", "2026-11-01T08:00:00", "BA"),
		offer("2", "250.00", "2026-11-01T08:00:00", "BA"),
		offer("3", "400.00", "2026-11-01T08:00:00", "BA"),
		offer("4", "999.00", "2026-11-01T08:00:00", "BA"),
	}

	result := Apply(offers, &models.FilterSpec{MaxPrice: float(300)})

	assert.Equal(t, []string{"1", "2"}, ids(result))
}

func TestApply_MaxPriceIsInclusive(t *testing.T) {
	offers := []models.FlightOffer{offer("1", "300.00", "2026-11-01T08:00:00", "BA")}

	result := Apply(offers, &models.FilterSpec{MaxPrice: float(300)})

	assert.Len(t, result, 1)
}

func TestApply_UnparseablePriceFailsCeiling(t *testing.T) {
	for _, price := range []string{"n/a", "", "NaN", "Inf", "+Inf", "-Inf"} {
		t.Run(price, func(t *testing.T) {
			offers := []models.FlightOffer{
				offer("1", "100.00", "2026-11-01T08:00:00", "BA"),
				offer("2", price, "2026-11-01T08:00:00", "BA"),
			}

			assert.Equal(t, []string{"1"}, ids(Apply(offers, &models.FilterSpec{MaxPrice: float(300)})))
			assert.Len(t, Apply(offers, &models.FilterSpec{}), 2)
		})
	}
}

func TestApply_DepartureHourRange(t *testing.T) {
	offers := []models.FlightOffer{
		offer("h3", "100", "2026-11-01T03:10:00", "BA"),
		offer("h9", "100", "2026-11-01T09:45:00", "BA"),
		offer("h14", "100", "2026-11-01T14:00:00", "BA"),
		offer("h20", "100", "2026-11-01T20:30:00", "BA"),
	}

	result := Apply(offers, &models.FilterSpec{DepartureTime: []int{6, 12}})

	assert.Equal(t, []string{"h9"}, ids(result))
}

func TestApply_DepartureHourUsesLocalWallClock(t *testing.T) {
	offers := []models.FlightOffer{
		offer("offset", "100", "2026-11-01T23:30:00+09:00", "JL"),
	}

	assert.Len(t, Apply(offers, &models.FilterSpec{DepartureTime: []int{18, 24}}), 1)
	assert.Empty(t, Apply(offers, &models.FilterSpec{DepartureTime: []int{12, 18}}))
}

func TestApply_DepartureRangeExcludesOffersWithoutSegments(t *testing.T) {
	offers := []models.FlightOffer{{ID: "empty", Price: models.Price{Total: "10"}}}

	assert.Empty(t, Apply(offers, &models.FilterSpec{DepartureTime: []int{0, 24}}))
}

func TestApply_Airlines(t *testing.T) {
	offers := []models.FlightOffer{
		offer("1", "100", "2026-11-01T08:00:00", "BA"),
		offer("2", "100", "2026-11-01T08:00:00", "AA", "IB"),
		offer("3", "100", "2026-11-01T08:00:00", "DL"),
	}

	tests := []struct {
		name     string
		airlines []string
		expected []string
	}{
		{"single match", []string{"BA"}, []string{"1"}},
		{"intersects any code", []string{"IB"}, []string{"2"}},
		{"several airlines keep input order", []string{"DL", "BA"}, []string{"1", "3"}},
		{"case insensitive", []string{"dl"}, []string{"3"}},
		{"no match", []string{"LH"}, []string{}},
		{"empty list is ignored", []string{}, []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Apply(offers, &models.FilterSpec{Airlines: tt.airlines})
			assert.Equal(t, tt.expected, ids(result))
		})
	}
}

func TestApply_CombinedCriteria(t *testing.T) {
	offers := []models.FlightOffer{
		offer("cheap-ba-morning", "150", "2026-11-01T07:00:00", "BA"),
		offer("cheap-ba-night", "150", "2026-11-01T02:00:00", "BA"),
		offer("pricey-ba-morning", "900", "2026-11-01T07:00:00", "BA"),
		offer("cheap-aa-morning", "150", "2026-11-01T07:00:00", "AA"),
	}

	spec := &models.FilterSpec{
		MaxPrice:      float(500),
		Airlines:      []string{"BA"},
		DepartureTime: []int{6, 12},
	}

	assert.Equal(t, []string{"cheap-ba-morning"}, ids(Apply(offers, spec)))
}

func TestApply_NilSpecKeepsEverything(t *testing.T) {
	offers := []models.FlightOffer{
		offer("b", "300", "2026-11-01T07:00:00", "BA"),
		offer("a", "100", "2026-11-01T07:00:00", "BA"),
	}

	result := Apply(offers, nil)

	assert.Equal(t, []string{"b", "a"}, ids(result))
}

func TestApply_IdempotentAndOrderPreserving(t *testing.T) {
	var offers []models.FlightOffer
	airlines := []string{"BA", "AA", "DL", "LH"}
	for i := 0; i < 40; i++ {
		price := fmt.Sprintf("%d.50", 50+(i*37)%900)
		at := fmt.Sprintf("2026-11-01T%02d:15:00", (i*5)%24)
		offers = append(offers, offer(fmt.Sprintf("o%d", i), price, at, airlines[i%len(airlines)]))
	}

	specs := []*models.FilterSpec{
		nil,
		{MaxPrice: float(400)},
		{Airlines: []string{"AA", "LH"}},
		{DepartureTime: []int{18, 24}},
		{MaxPrice: float(700), Airlines: []string{"BA"}, DepartureTime: []int{0, 12}},
	}

	for i, spec := range specs {
		t.Run(fmt.Sprintf("spec %d", i), func(t *testing.T) {
			once := Apply(offers, spec)
			twice := Apply(once, spec)
			assert.Equal(t, ids(once), ids(twice))

			// surviving offers appear in the same relative order as the input
			pos := -1
			for _, o := range once {
				idx := indexOf(offers, o.ID)
				require.Greater(t, idx, pos)
				pos = idx
			}
		})
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	offers := []models.FlightOffer{
		offer("1", "500", "2026-11-01T07:00:00", "BA"),
		offer("2", "100", "2026-11-01T07:00:00", "BA"),
	}

	_ = Apply(offers, &models.FilterSpec{MaxPrice: float(200)})

	assert.Equal(t, []string{"1", "2"}, ids(offers))
}

func indexOf(offers []models.FlightOffer, id string) int {
	for i, o := range offers {
		if o.ID == id {
			return i
		}
	}
	return -1
}
