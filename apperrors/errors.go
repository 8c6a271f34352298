package apperrors

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ValidationError rejects bad input shape or range before any mutation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Validation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports an availability overlap, naming the window hit.
type ConflictError struct {
	Message             string
	ConflictingWindowID uuid.UUID
}

func (e *ConflictError) Error() string { return e.Message }

func Conflict(windowID uuid.UUID, format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...), ConflictingWindowID: windowID}
}

// InvalidTransitionError is a state machine guard failure.
type InvalidTransitionError struct {
	Message string
}

func (e *InvalidTransitionError) Error() string { return e.Message }

func InvalidTransition(format string, args ...interface{}) *InvalidTransitionError {
	return &InvalidTransitionError{Message: fmt.Sprintf(format, args...)}
}

// AuthorizationError means the actor does not own the resource or lacks the role.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

func Authorization(format string, args ...interface{}) *AuthorizationError {
	return &AuthorizationError{Message: fmt.Sprintf(format, args...)}
}

// NotCompletedError rejects feedback for a session that has not completed.
type NotCompletedError struct {
	Message string
}

func (e *NotCompletedError) Error() string { return e.Message }

func NotCompleted(format string, args ...interface{}) *NotCompletedError {
	return &NotCompletedError{Message: fmt.Sprintf(format, args...)}
}

// DuplicateFeedbackError rejects a second feedback for the same session.
type DuplicateFeedbackError struct {
	Message string
}

func (e *DuplicateFeedbackError) Error() string { return e.Message }

func DuplicateFeedback(format string, args ...interface{}) *DuplicateFeedbackError {
	return &DuplicateFeedbackError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError means the referenced entity does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// TransientError wraps infrastructure failures where a retry by the caller
// might help (lock-wait timeouts, dropped connections). Domain errors never
// use this type.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return "transient storage error: " + e.Err.Error() }

func (e *TransientError) Unwrap() error { return e.Err }

func Transient(err error) *TransientError { return &TransientError{Err: err} }

// HTTPStatus maps a domain error to the status the web tier should send.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ValidationError:
		return fiber.StatusUnprocessableEntity
	case *ConflictError, *InvalidTransitionError, *DuplicateFeedbackError:
		return fiber.StatusConflict
	case *AuthorizationError:
		return fiber.StatusForbidden
	case *NotCompletedError:
		return fiber.StatusConflict
	case *NotFoundError:
		return fiber.StatusNotFound
	case *TransientError:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
