package handlers

import (
	"net/http"

	"stockit/internal/common"
	"stockit/internal/models"
	"stockit/internal/services"

	"github.com/labstack/echo/v4"
)

// InventoryHandlers handles stock item HTTP requests.
type InventoryHandlers struct {
	inventoryService services.InventoryService
	historyService   services.LocationHistoryService
}

func NewInventoryHandlers(inventoryService services.InventoryService, historyService services.LocationHistoryService) *InventoryHandlers {
	return &InventoryHandlers{
		inventoryService: inventoryService,
		historyService:   historyService,
	}
}

// ListProducts returns all items; filtering happens client-side.
func (h *InventoryHandlers) ListProducts(c echo.Context) error {
	products, err := h.inventoryService.List(c.Request().Context())
	if err != nil {
		return toHTTPError(err, "Inventory")
	}
	if products == nil {
		products = []*models.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

// CreateProductRequest keeps the legacy wire names (cat, stoc).
type CreateProductRequest struct {
	Name            string  `json:"name" validate:"required"`
	Cat             string  `json:"cat" validate:"required"`
	Stoc            int     `json:"stoc" validate:"min=0"`
	Barcode         *string `json:"barcode"`
	CurrentLocation string  `json:"currentLocation"`
}

func (h *InventoryHandlers) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product := &models.Product{
		Name:            req.Name,
		Cat:             req.Cat,
		Stoc:            req.Stoc,
		Barcode:         req.Barcode,
		CurrentLocation: req.CurrentLocation,
	}
	if err := h.inventoryService.Create(c.Request().Context(), product); err != nil {
		return toHTTPError(err, "Product")
	}

	return c.JSON(http.StatusCreated, product)
}

func (h *InventoryHandlers) GetProduct(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.inventoryService.GetByID(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err, "Product")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *InventoryHandlers) UpdateProduct(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var upd models.ProductUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	product, err := h.inventoryService.Update(c.Request().Context(), id, &upd)
	if err != nil {
		return toHTTPError(err, "Product")
	}
	return c.JSON(http.StatusOK, product)
}

type ScanRequest struct {
	Barcode string `json:"barcode" validate:"required"`
}

// ScanBarcode resolves a scanned barcode to its product.
func (h *InventoryHandlers) ScanBarcode(c echo.Context) error {
	var req ScanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.inventoryService.LookupByBarcode(c.Request().Context(), req.Barcode)
	if err != nil {
		return toHTTPError(err, "Product")
	}
	return c.JSON(http.StatusOK, product)
}

type MoveRequest struct {
	ToLocation string `json:"toLocation" validate:"required"`
}

func (h *InventoryHandlers) MoveProduct(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req MoveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.inventoryService.Move(c.Request().Context(), id, req.ToLocation)
	if err != nil {
		return toHTTPError(err, "Product")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product moved to " + req.ToLocation,
		"product": product,
	})
}

// ProductHistory returns the location audit log, most recent first.
func (h *InventoryHandlers) ProductHistory(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entries, err := h.historyService.History(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err, "Product")
	}
	if entries == nil {
		entries = []*models.LocationHistory{}
	}
	return c.JSON(http.StatusOK, entries)
}
