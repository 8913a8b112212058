package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/flightfinder/internal/filter"
	"github.com/dharmasatrya/flightfinder/internal/models"
)

// Filter handles POST /api/offers/filter: it applies the filter spec to the
// posted offers and returns the survivors with the histogram and stats
// computed over them. Airline and time-slot facets cover every posted offer
// so the choices do not shrink as filters are applied.
func Filter(c echo.Context) error {
	var req models.FilterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid filter request",
			Message: err.Error(),
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid filter request",
			Message: err.Error(),
		})
	}
	if start, end, ok := req.Filters.HourRange(); ok && start >= end {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid filter request",
			Message: "departureTime must be [start, end) with start < end",
		})
	}

	filtered := filter.Apply(req.Offers, req.Filters)

	var carriers map[string]string
	if req.Dictionaries != nil {
		carriers = req.Dictionaries.Carriers
	}

	return c.JSON(http.StatusOK, models.FilterResponse{
		Data:       filtered,
		Total:      len(req.Offers),
		Filtered:   len(filtered),
		PriceStats: filter.Stats(filtered),
		Histogram:  filter.PriceBuckets(filtered),
		Airlines:   filter.Airlines(req.Offers, carriers),
		TimeSlots:  filter.TimeSlots(req.Offers),
	})
}
