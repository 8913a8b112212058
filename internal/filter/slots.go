package filter

import "github.com/dharmasatrya/flightfinder/internal/models"

type timeSlot struct {
	label      string
	start, end int
}

var timeSlots = []timeSlot{
	{"Morning", 6, 12},
	{"Afternoon", 12, 18},
	{"Evening", 18, 24},
	{"Night", 0, 6},
}

// TimeSlots counts offers per departure-hour preset. The presets cover the
// whole day, so every offer with a parseable first departure lands in exactly
// one of them.
func TimeSlots(offers []models.FlightOffer) []models.TimeSlotFacet {
	facets := make([]models.TimeSlotFacet, len(timeSlots))
	for i, s := range timeSlots {
		facets[i] = models.TimeSlotFacet{Label: s.label, Start: s.start, End: s.end}
	}

	for _, o := range offers {
		dep, ok := o.FirstDeparture()
		if !ok {
			continue
		}
		hour := dep.Hour()
		for i, s := range timeSlots {
			if hour >= s.start && hour < s.end {
				facets[i].Count++
				break
			}
		}
	}

	return facets
}
