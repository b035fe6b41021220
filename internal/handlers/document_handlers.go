package handlers

import (
	"fmt"
	"io"
	"net/http"

	"stockit/internal/common"
	"stockit/internal/models"
	"stockit/internal/services"

	"github.com/labstack/echo/v4"
)

type DocumentHandlers struct {
	documentService services.DocumentService
}

func NewDocumentHandlers(documentService services.DocumentService) *DocumentHandlers {
	return &DocumentHandlers{documentService: documentService}
}

// UploadDocument accepts one multipart file up to 2 MiB and stores it
// against the product in the path.
func (h *DocumentHandlers) UploadDocument(c echo.Context) error {
	productID, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No file uploaded")
	}
	if fileHeader.Size > models.MaxDocumentSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "document exceeds the 2 MiB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, models.MaxDocumentSize+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read uploaded file")
	}

	documentType := c.FormValue("documentType")
	meta, err := h.documentService.Upload(c.Request().Context(), productID, fileHeader.Filename, data, documentType)
	if err != nil {
		return toHTTPError(err, "Product")
	}

	return c.JSON(http.StatusCreated, meta)
}

// ListDocuments returns metadata only; the blob is never included.
func (h *DocumentHandlers) ListDocuments(c echo.Context) error {
	productID, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	metas, err := h.documentService.ListForProduct(c.Request().Context(), productID)
	if err != nil {
		return toHTTPError(err, "Product")
	}
	if metas == nil {
		metas = []*models.DocumentMeta{}
	}
	return c.JSON(http.StatusOK, metas)
}

// FetchDocument streams the stored bytes inline with the content type
// detected at upload time.
func (h *DocumentHandlers) FetchDocument(c echo.Context) error {
	docID, err := common.ValidateUUID(c.Param("docId"), "document id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	document, err := h.documentService.Fetch(c.Request().Context(), docID)
	if err != nil {
		return toHTTPError(err, "Document")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", document.FileName))
	return c.Blob(http.StatusOK, document.ContentType, document.FileBytes)
}

func (h *DocumentHandlers) DeleteDocument(c echo.Context) error {
	docID, err := common.ValidateUUID(c.Param("docId"), "document id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.documentService.Delete(c.Request().Context(), docID); err != nil {
		return toHTTPError(err, "Document")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Document deleted"})
}
