package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/touchpoint/pkg/api/errors"
	"github.com/jordanlanch/touchpoint/pkg/models"
	"github.com/jordanlanch/touchpoint/pkg/preset"
)

// PresetHandler handles preset catalog HTTP requests.
type PresetHandler struct {
	presetService *preset.Service
	validator     *validator.Validate
}

// NewPresetHandler creates a new preset handler.
func NewPresetHandler(presetService *preset.Service) *PresetHandler {
	return &PresetHandler{
		presetService: presetService,
		validator:     validator.New(),
	}
}

// Create godoc
// @Summary Create a touch-sequence preset
// @Description Create a reusable named sequence template
// @Tags Presets
// @Accept json
// @Produce json
// @Param request body preset.CreatePresetRequest true "Preset details"
// @Success 201 {object} preset.PresetResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/presets [post]
func (h *PresetHandler) Create(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req preset.CreatePresetRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.presetService.CreatePreset(ctx, actorID(c), req)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary Get a preset
// @Tags Presets
// @Produce json
// @Param id path int true "Preset ID"
// @Success 200 {object} preset.PresetResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/presets/{id} [get]
func (h *PresetHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Preset ID must be a number",
		})
	}

	resp, err := h.presetService.GetPreset(c.Request().Context(), id)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List presets
// @Description List presets, optionally only active ones
// @Tags Presets
// @Produce json
// @Param active query bool false "Only active presets"
// @Success 200 {array} preset.PresetResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/presets [get]
func (h *PresetHandler) List(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"

	resp, err := h.presetService.ListPresets(c.Request().Context(), activeOnly)
	if err != nil {
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Update a preset
// @Description Update preset fields; steps are replaced wholesale when provided
// @Tags Presets
// @Accept json
// @Produce json
// @Param id path int true "Preset ID"
// @Param request body preset.UpdatePresetRequest true "Fields to update"
// @Success 200 {object} preset.PresetResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/presets/{id} [put]
func (h *PresetHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Preset ID must be a number",
		})
	}

	var req preset.UpdatePresetRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.presetService.UpdatePreset(c.Request().Context(), actorID(c), id, req)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a preset
// @Description Delete a preset; presets referenced by subscriptions are deactivated instead
// @Tags Presets
// @Produce json
// @Param id path int true "Preset ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/presets/{id} [delete]
func (h *PresetHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Preset ID must be a number",
		})
	}

	if err := h.presetService.DeletePreset(c.Request().Context(), actorID(c), id); err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Preset deleted",
	})
}
