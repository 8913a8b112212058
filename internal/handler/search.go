package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/flightfinder/internal/models"
	"github.com/dharmasatrya/flightfinder/internal/proxy"
)

type SearchHandler struct {
	proxy *proxy.Service
}

func NewSearchHandler(svc *proxy.Service) *SearchHandler {
	return &SearchHandler{
		proxy: svc,
	}
}

// Search handles GET /api/search and passes the upstream body through.
func (h *SearchHandler) Search(c echo.Context) error {
	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid search parameters",
			Message: err.Error(),
		})
	}

	body, err := h.proxy.Search(c.Request().Context(), req)
	if err != nil {
		return writeProxyError(c, err)
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, body)
}

func writeProxyError(c echo.Context, err error) error {
	var perr *proxy.Error
	if !errors.As(err, &perr) {
		logrus.WithError(err).Error("Unexpected search error")
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to search flights",
			Message: err.Error(),
		})
	}

	resp := models.ErrorResponse{Error: perr.Message}
	switch perr.Kind {
	case proxy.KindValidation:
		resp.Details = perr.Details
	case proxy.KindUpstream:
		resp.Message = perr.Detail
	}

	return c.JSON(perr.Kind.StatusCode(), resp)
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
