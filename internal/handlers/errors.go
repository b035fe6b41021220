package handlers

import (
	"errors"
	"net/http"

	"stockit/internal/services"

	"github.com/labstack/echo/v4"
)

// toHTTPError maps service errors onto the API taxonomy: validation 400,
// missing record 404, duplicate barcode 409, oversized payload 413,
// anything else 500 with the raw message.
func toHTTPError(err error, resource string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, resource+" not found")
	case errors.Is(err, services.ErrInvalidQuantity):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrDuplicateBarcode):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrDocumentTooLarge):
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
