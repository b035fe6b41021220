package handlers

import (
	"fmt"
	"net/http"

	"stockit/internal/services"

	"github.com/labstack/echo/v4"
)

const procesVerbalObject = "proc_verbal.pdf"

// FileHandlers serves shared report and template files from the object
// storage bucket (the legacy public/ directory).
type FileHandlers struct {
	fileService services.FileService
	bucket      string
}

func NewFileHandlers(fileService services.FileService, bucket string) *FileHandlers {
	return &FileHandlers{fileService: fileService, bucket: bucket}
}

// ServeFile handles GET /files/*.
func (h *FileHandlers) ServeFile(c echo.Context) error {
	objectName := c.Param("*")
	if objectName == "" {
		return echo.NewHTTPError(http.StatusNotFound, "File not found")
	}

	data, contentType, err := h.fileService.Fetch(c.Request().Context(), h.bucket, objectName)
	if err != nil {
		return toHTTPError(err, "File")
	}
	return c.Blob(http.StatusOK, contentType, data)
}

// DownloadProcesVerbal serves the consumption report template as an
// attachment.
func (h *FileHandlers) DownloadProcesVerbal(c echo.Context) error {
	data, _, err := h.fileService.Fetch(c.Request().Context(), h.bucket, procesVerbalObject)
	if err != nil {
		return toHTTPError(err, "File")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", procesVerbalObject))
	return c.Blob(http.StatusOK, "application/pdf", data)
}
