package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/touchpoint/pkg/api/errors"
	"github.com/jordanlanch/touchpoint/pkg/export"
	"github.com/jordanlanch/touchpoint/pkg/metrics"
)

// ExportHandler handles touch-history export endpoints.
type ExportHandler struct {
	exportService *export.Service
	metrics       *metrics.Metrics
	validator     *validator.Validate
}

// NewExportHandler creates a new export handler.
func NewExportHandler(exportService *export.Service, m *metrics.Metrics) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		metrics:       m,
		validator:     validator.New(),
	}
}

// Create godoc
// @Summary Export touch history
// @Description Generate a CSV or Excel file of touches matching the filters
// @Tags Export
// @Accept json
// @Produce json
// @Param request body export.Request true "Export filters"
// @Success 201 {object} export.Result
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/exports [post]
func (h *ExportHandler) Create(c echo.Context) error {
	var req export.Request
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	result, err := h.exportService.CreateExport(c.Request().Context(), actorID(c), req)
	if err != nil {
		return errors.DomainError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordExportCreated()
	}
	return c.JSON(http.StatusCreated, result)
}

// Download godoc
// @Summary Download a generated export file
// @Tags Export
// @Produce octet-stream
// @Param file query string true "File name returned by the export endpoint"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/exports/download [get]
func (h *ExportHandler) Download(c echo.Context) error {
	name := c.QueryParam("file")
	path, err := h.exportService.FilePath(name)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.Attachment(path, name)
}
