package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sivanandz/luminila-ERP-sub002/internal/csvexport"
	"github.com/sivanandz/luminila-ERP-sub002/internal/service"
)

// ExportHandler handles invoice register export endpoints.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// CSV handles GET /api/v1/exports/invoices.csv
func (h *ExportHandler) CSV(c *gin.Context) {
	filename := csvexport.BuildFilename("invoices", "csv")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.exportService.WriteCSV(c.Request.Context(), c.Writer); err != nil {
		// Headers may already be out; log and abort the stream.
		c.Error(err) //nolint:errcheck
		c.Abort()
		return
	}
	c.Status(http.StatusOK)
}

// XLSX handles GET /api/v1/exports/invoices.xlsx
func (h *ExportHandler) XLSX(c *gin.Context) {
	filename := csvexport.BuildFilename("invoices", "xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.exportService.WriteXLSX(c.Request.Context(), c.Writer); err != nil {
		c.Error(err) //nolint:errcheck
		c.Abort()
		return
	}
	c.Status(http.StatusOK)
}
