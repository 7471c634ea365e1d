package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/touchpoint/pkg/api/errors"
	"github.com/jordanlanch/touchpoint/pkg/metrics"
	"github.com/jordanlanch/touchpoint/pkg/models"
	"github.com/jordanlanch/touchpoint/pkg/subscription"
)

// SubscriptionHandler handles subscription lifecycle HTTP requests.
type SubscriptionHandler struct {
	subscriptionService *subscription.Service
	metrics             *metrics.Metrics
	validator           *validator.Validate
}

// NewSubscriptionHandler creates a new subscription handler.
func NewSubscriptionHandler(subscriptionService *subscription.Service, m *metrics.Metrics) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		metrics:             m,
		validator:           validator.New(),
	}
}

// Activate godoc
// @Summary Activate a subscription
// @Description Subscribe an entity to a touch sequence and materialize its first cycle
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body subscription.ActivateRequest true "Subscription details"
// @Success 201 {object} subscription.SubscriptionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/subscriptions [post]
func (h *SubscriptionHandler) Activate(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	var req subscription.ActivateRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.subscriptionService.Activate(ctx, actorID(c), req)
	if err != nil {
		return errors.DomainError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordSubscriptionActivated()
		h.metrics.RecordCycleStarted("activation")
	}
	return c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary Get a subscription
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 200 {object} subscription.SubscriptionResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/subscriptions/{id} [get]
func (h *SubscriptionHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Subscription ID must be a number",
		})
	}

	resp, err := h.subscriptionService.Get(c.Request().Context(), id)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List subscriptions
// @Tags Subscriptions
// @Produce json
// @Param status query string false "Filter by status"
// @Param assigned_to query int false "Filter by assignee"
// @Param entity_type query string false "Filter by entity type"
// @Param entity_id query int false "Filter by entity ID"
// @Success 200 {array} subscription.SubscriptionResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/subscriptions [get]
func (h *SubscriptionHandler) List(c echo.Context) error {
	filter := subscription.ListFilter{
		Status:     c.QueryParam("status"),
		EntityType: c.QueryParam("entity_type"),
	}
	if v, err := strconv.Atoi(c.QueryParam("assigned_to")); err == nil {
		filter.AssignedTo = v
	}
	if v, err := strconv.Atoi(c.QueryParam("entity_id")); err == nil {
		filter.EntityID = v
	}

	resp, err := h.subscriptionService.List(c.Request().Context(), filter)
	if err != nil {
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Pause godoc
// @Summary Pause a subscription
// @Description Pause an active subscription, optionally until a date for automatic resume
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path int true "Subscription ID"
// @Param request body subscription.PauseRequest false "Pause options"
// @Success 200 {object} subscription.SubscriptionResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/subscriptions/{id}/pause [post]
func (h *SubscriptionHandler) Pause(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Subscription ID must be a number",
		})
	}

	var req subscription.PauseRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.subscriptionService.Pause(c.Request().Context(), actorID(c), id, req)
	if err != nil {
		return errors.DomainError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordSubscriptionPaused()
	}
	return c.JSON(http.StatusOK, resp)
}

// Resume godoc
// @Summary Resume a paused subscription
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 200 {object} subscription.SubscriptionResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/subscriptions/{id}/resume [post]
func (h *SubscriptionHandler) Resume(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Subscription ID must be a number",
		})
	}

	resp, err := h.subscriptionService.Resume(c.Request().Context(), actorID(c), id)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Cancel godoc
// @Summary Cancel a subscription
// @Description Terminally cancel a subscription; its pending touches stop appearing in the due list
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 200 {object} subscription.SubscriptionResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/subscriptions/{id}/cancel [post]
func (h *SubscriptionHandler) Cancel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Subscription ID must be a number",
		})
	}

	resp, err := h.subscriptionService.Cancel(c.Request().Context(), actorID(c), id)
	if err != nil {
		return errors.DomainError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordSubscriptionCancelled()
	}
	return c.JSON(http.StatusOK, resp)
}

// Complete godoc
// @Summary Complete a subscription
// @Description Mark a subscription completed, regardless of remaining touches
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 200 {object} subscription.SubscriptionResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/subscriptions/{id}/complete [post]
func (h *SubscriptionHandler) Complete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Subscription ID must be a number",
		})
	}

	resp, err := h.subscriptionService.Complete(c.Request().Context(), actorID(c), id)
	if err != nil {
		return errors.DomainError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordSubscriptionCompleted()
	}
	return c.JSON(http.StatusOK, resp)
}

// RepeatCycle godoc
// @Summary Start a new cycle
// @Description Materialize the next cycle of touches from the stored template
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 200 {object} subscription.SubscriptionResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/subscriptions/{id}/repeat-cycle [post]
func (h *SubscriptionHandler) RepeatCycle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Subscription ID must be a number",
		})
	}

	resp, err := h.subscriptionService.RepeatCycle(c.Request().Context(), actorID(c), id)
	if err != nil {
		return errors.DomainError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordCycleStarted("user")
	}
	return c.JSON(http.StatusOK, resp)
}

// Progress godoc
// @Summary Get subscription progress
// @Description Resolved vs total touches for the current cycle, with the next pending touch
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 200 {object} subscription.ProgressResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/subscriptions/{id}/progress [get]
func (h *SubscriptionHandler) Progress(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Subscription ID must be a number",
		})
	}

	resp, err := h.subscriptionService.Progress(c.Request().Context(), id)
	if err != nil {
		return errors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}
