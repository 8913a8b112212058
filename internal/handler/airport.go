package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/flightfinder/internal/airport"
	"github.com/dharmasatrya/flightfinder/internal/models"
)

type AirportHandler struct {
	directory *airport.Directory
}

func NewAirportHandler(dir *airport.Directory) *AirportHandler {
	return &AirportHandler{
		directory: dir,
	}
}

type airportQuery struct {
	Query string `query:"q"`
	Limit int    `query:"limit" validate:"gte=0"`
}

// Search handles GET /api/airports?q=&limit=. A dataset that fails to load
// yields an empty list rather than an error.
func (h *AirportHandler) Search(c echo.Context) error {
	var q airportQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid airport query",
			Message: err.Error(),
		})
	}
	if err := c.Validate(&q); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid airport query",
			Message: err.Error(),
		})
	}

	airports, err := h.directory.Search(c.Request().Context(), q.Query, q.Limit)
	if err != nil {
		logrus.WithError(err).Warn("Airport search served without dataset")
	}

	return c.JSON(http.StatusOK, models.AirportListResponse{Data: airports})
}

func (h *AirportHandler) Popular(c echo.Context) error {
	airports, err := h.directory.Popular(c.Request().Context())
	if err != nil {
		logrus.WithError(err).Warn("Popular airports served without dataset")
	}

	return c.JSON(http.StatusOK, models.AirportListResponse{Data: airports})
}

func (h *AirportHandler) ByCode(c echo.Context) error {
	code := c.Param("code")

	a, found, err := h.directory.ByCode(c.Request().Context(), code)
	if err != nil {
		logrus.WithError(err).Warn("Airport lookup served without dataset")
	}
	if !found {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Airport not found: " + code,
		})
	}

	return c.JSON(http.StatusOK, models.AirportResponse{Data: a})
}
