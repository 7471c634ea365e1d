package errors

import (
	stderrors "errors"
	"log"
	"net/http"

	"github.com/jordanlanch/touchpoint/pkg/domain"
	"github.com/jordanlanch/touchpoint/pkg/models"
	"github.com/labstack/echo/v4"
)

// ValidationError returns a generic validation error without exposing internal details
func ValidationError(c echo.Context, err error) error {
	// Log the actual error for debugging
	log.Printf("[VALIDATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	// Log the actual error for debugging
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// NotFoundError returns a generic not found error
func NotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: "The requested resource was not found.",
	})
}

// ConflictError returns a generic conflict error
func ConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, models.ErrorResponse{
		Error:   "conflict",
		Message: message, // Message is safe to expose (e.g., "Cycle already repeated")
	})
}

// DomainError maps an engine error onto the matching HTTP response. Domain
// messages are written for operators and are safe to expose; anything that
// is not a typed domain error falls back to a generic 500.
func DomainError(c echo.Context, err error) error {
	var derr *domain.DomainError
	if !stderrors.As(err, &derr) {
		return InternalError(c, err)
	}

	status := http.StatusInternalServerError
	switch derr.Code {
	case domain.ErrCodeNotFound:
		status = http.StatusNotFound
	case domain.ErrCodeValidation, domain.ErrCodeEmptySequence,
		domain.ErrCodeInvalidInterval, domain.ErrCodeMissingAssignee:
		status = http.StatusBadRequest
	case domain.ErrCodeInvalidStateTransition, domain.ErrCodeConflict:
		status = http.StatusConflict
	}

	return c.JSON(status, models.ErrorResponse{
		Error:   derr.Code,
		Message: derr.Message,
	})
}
