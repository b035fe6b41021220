package handlers

import (
	"net/http"

	"stockit/internal/common"
	"stockit/internal/models"
	"stockit/internal/services"

	"github.com/labstack/echo/v4"
)

type ConsumptionHandlers struct {
	consumptionService services.ConsumptionService
}

func NewConsumptionHandlers(consumptionService services.ConsumptionService) *ConsumptionHandlers {
	return &ConsumptionHandlers{consumptionService: consumptionService}
}

func (h *ConsumptionHandlers) ListConsumptions(c echo.Context) error {
	consumptions, err := h.consumptionService.List(c.Request().Context())
	if err != nil {
		return toHTTPError(err, "Consumption")
	}
	if consumptions == nil {
		consumptions = []*models.Consumption{}
	}
	return c.JSON(http.StatusOK, consumptions)
}

// RecordConsumptionRequest keeps the legacy wire names (cant, locm).
// Cant is a pointer so "missing" and "zero" stay distinguishable.
type RecordConsumptionRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Cant      *int    `json:"cant" validate:"required"`
	User      *string `json:"user"`
	Locm      *string `json:"locm"`
}

func (h *ConsumptionHandlers) RecordConsumption(c echo.Context) error {
	var req RecordConsumptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.ProductID == "" || req.Cant == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "productId and cant are required")
	}

	productID, err := common.ValidateUUID(req.ProductID, "productId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Fall back to the authenticated username when the caller omits one.
	if req.User == nil {
		if username, ok := common.GetUserFromContext(c.Request().Context()); ok {
			req.User = &username
		}
	}

	consumption := &models.Consumption{
		ProductID: productID,
		Cant:      *req.Cant,
		User:      req.User,
		Locm:      req.Locm,
	}
	if _, err := h.consumptionService.Record(c.Request().Context(), consumption); err != nil {
		return toHTTPError(err, "Inventory item")
	}

	return c.JSON(http.StatusCreated, consumption)
}
