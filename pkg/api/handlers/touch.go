package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/touchpoint/pkg/api/errors"
	"github.com/jordanlanch/touchpoint/pkg/domain"
	"github.com/jordanlanch/touchpoint/pkg/metrics"
	"github.com/jordanlanch/touchpoint/pkg/models"
	"github.com/jordanlanch/touchpoint/pkg/touch"
)

// TouchHandler handles touch state-machine HTTP requests.
type TouchHandler struct {
	touchService *touch.Service
	metrics      *metrics.Metrics
	validator    *validator.Validate
}

// NewTouchHandler creates a new touch handler.
func NewTouchHandler(touchService *touch.Service, m *metrics.Metrics) *TouchHandler {
	return &TouchHandler{
		touchService: touchService,
		metrics:      m,
		validator:    validator.New(),
	}
}

// MoveRequest carries the new date for a snooze or reschedule.
type MoveRequest struct {
	Until time.Time `json:"until" validate:"required"`
}

// ReassignRequest carries the new assignee for a touch.
type ReassignRequest struct {
	AssigneeID int `json:"assignee_id" validate:"required,min=1"`
}

// Complete godoc
// @Summary Complete a touch
// @Description Resolve a pending touch with an outcome, or postpone it via a snooze/reschedule follow-up
// @Tags Touches
// @Accept json
// @Produce json
// @Param id path int true "Touch ID"
// @Param request body touch.CompleteTouchRequest true "Outcome and optional follow-up"
// @Success 200 {object} touch.ResolutionResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/touches/{id}/complete [post]
func (h *TouchHandler) Complete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Touch ID must be a number",
		})
	}

	var req touch.CompleteTouchRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	result, err := h.touchService.CompleteTouch(ctx, actorID(c), id, req)
	if err != nil {
		return errors.DomainError(c, err)
	}

	h.recordResolution("completed", result.Evaluation)
	return c.JSON(http.StatusOK, result)
}

// Skip godoc
// @Summary Skip a touch
// @Description Resolve a pending touch as skipped; counts toward cycle completion
// @Tags Touches
// @Produce json
// @Param id path int true "Touch ID"
// @Success 200 {object} touch.ResolutionResult
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/touches/{id}/skip [post]
func (h *TouchHandler) Skip(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Touch ID must be a number",
		})
	}

	result, err := h.touchService.SkipTouch(ctx, actorID(c), id)
	if err != nil {
		return errors.DomainError(c, err)
	}

	h.recordResolution("skipped", result.Evaluation)
	return c.JSON(http.StatusOK, result)
}

// Snooze godoc
// @Summary Snooze a touch
// @Description Push a pending touch to a later date without resolving it
// @Tags Touches
// @Accept json
// @Produce json
// @Param id path int true "Touch ID"
// @Param request body MoveRequest true "New date"
// @Success 200 {object} touch.TouchResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/touches/{id}/snooze [post]
func (h *TouchHandler) Snooze(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Touch ID must be a number",
		})
	}

	var req MoveRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.touchService.SnoozeTouch(c.Request().Context(), actorID(c), id, req.Until)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Reschedule godoc
// @Summary Reschedule a touch
// @Tags Touches
// @Accept json
// @Produce json
// @Param id path int true "Touch ID"
// @Param request body MoveRequest true "New date"
// @Success 200 {object} touch.TouchResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/touches/{id}/reschedule [post]
func (h *TouchHandler) Reschedule(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Touch ID must be a number",
		})
	}

	var req MoveRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.touchService.RescheduleTouch(c.Request().Context(), actorID(c), id, req.Until)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Reassign godoc
// @Summary Reassign a touch
// @Description Hand a touch to a different staff member; allowed in any status
// @Tags Touches
// @Accept json
// @Produce json
// @Param id path int true "Touch ID"
// @Param request body ReassignRequest true "New assignee"
// @Success 200 {object} touch.TouchResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/touches/{id}/reassign [post]
func (h *TouchHandler) Reassign(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Touch ID must be a number",
		})
	}

	var req ReassignRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.touchService.ReassignTouch(c.Request().Context(), actorID(c), id, req.AssigneeID)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Edit godoc
// @Summary Edit a pending touch
// @Description Change method, schedule or assignee of a pending touch
// @Tags Touches
// @Accept json
// @Produce json
// @Param id path int true "Touch ID"
// @Param request body touch.EditTouchRequest true "Fields to change"
// @Success 200 {object} touch.TouchResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/touches/{id} [put]
func (h *TouchHandler) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Touch ID must be a number",
		})
	}

	var req touch.EditTouchRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.touchService.EditTouch(c.Request().Context(), actorID(c), id, req)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Add godoc
// @Summary Add an ad-hoc touch
// @Description Append an extra touch to the current cycle of a subscription
// @Tags Touches
// @Accept json
// @Produce json
// @Param id path int true "Subscription ID"
// @Param request body touch.AddTouchRequest true "Touch details"
// @Success 201 {object} touch.TouchResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/subscriptions/{id}/touches [post]
func (h *TouchHandler) Add(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Subscription ID must be a number",
		})
	}

	var req touch.AddTouchRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.touchService.AddTouch(c.Request().Context(), actorID(c), id, req)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary Get a touch
// @Tags Touches
// @Produce json
// @Param id path int true "Touch ID"
// @Success 200 {object} touch.TouchResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/touches/{id} [get]
func (h *TouchHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Touch ID must be a number",
		})
	}

	resp, err := h.touchService.GetTouch(c.Request().Context(), id)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListBySubscription godoc
// @Summary List touches of a subscription
// @Tags Touches
// @Produce json
// @Param id path int true "Subscription ID"
// @Param cycle query int false "Restrict to one cycle"
// @Success 200 {array} touch.TouchResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/subscriptions/{id}/touches [get]
func (h *TouchHandler) ListBySubscription(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Subscription ID must be a number",
		})
	}

	var cycle *int
	if v, err := strconv.Atoi(c.QueryParam("cycle")); err == nil {
		cycle = &v
	}

	resp, err := h.touchService.ListBySubscription(c.Request().Context(), id, cycle)
	if err != nil {
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListDue godoc
// @Summary List due touches
// @Description Pending touches of active subscriptions due on or before a date
// @Tags Touches
// @Produce json
// @Param assignee_id query int false "Filter by assignee"
// @Param as_of query string false "Reference date (RFC 3339), defaults to now"
// @Param overdue query bool false "Only touches past their scheduled date"
// @Success 200 {array} touch.DueTouch
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/touches/due [get]
func (h *TouchHandler) ListDue(c echo.Context) error {
	filter := touch.DueFilter{
		OverdueOnly: c.QueryParam("overdue") == "true",
	}
	if v, err := strconv.Atoi(c.QueryParam("assignee_id")); err == nil {
		filter.AssigneeID = v
	}
	if raw := c.QueryParam("as_of"); raw != "" {
		asOf, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "validation_error",
				Message: "as_of must be an RFC 3339 timestamp",
			})
		}
		filter.AsOf = asOf
	}

	resp, err := h.touchService.ListDue(c.Request().Context(), filter)
	if err != nil {
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *TouchHandler) recordResolution(status string, eval *domain.CycleEvaluation) {
	if h.metrics == nil {
		return
	}
	h.metrics.RecordTouchResolved(status)
	if eval == nil || !eval.CycleComplete {
		return
	}
	if eval.NewCycle > 0 {
		h.metrics.RecordCycleStarted("auto_repeat")
	} else if eval.Behavior != domain.BehaviorUserDefined {
		h.metrics.RecordSubscriptionCompleted()
	}
}
