package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dharmasatrya/flightfinder/internal/logging"
)

// NewRouter builds the echo instance with middleware and every route.
func NewRouter(search *SearchHandler, airports *AirportHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(logging.RequestLogger())

	api := e.Group("/api")
	api.GET("/search", search.Search)
	api.GET("/airports", airports.Search)
	api.GET("/airports/popular", airports.Popular)
	api.GET("/airports/:code", airports.ByCode)
	api.POST("/offers/filter", Filter)

	e.GET("/health", HealthHandler)

	return e
}
