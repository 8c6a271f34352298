package apperrors

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	windowID := uuid.New()

	cases := []struct {
		err  error
		want int
	}{
		{Validation("bad duration"), fiber.StatusUnprocessableEntity},
		{Conflict(windowID, "overlap with %s", windowID), fiber.StatusConflict},
		{InvalidTransition("cannot confirm a completed booking"), fiber.StatusConflict},
		{DuplicateFeedback("already reviewed"), fiber.StatusConflict},
		{NotCompleted("session is scheduled"), fiber.StatusConflict},
		{Authorization("not your booking"), fiber.StatusForbidden},
		{NotFound("booking not found"), fiber.StatusNotFound},
		{Transient(errors.New("lock timeout")), fiber.StatusServiceUnavailable},
		{errors.New("anything else"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), "%v", tc.err)
	}
}

func TestConflictNamesWindow(t *testing.T) {
	windowID := uuid.New()
	err := Conflict(windowID, "window overlaps existing availability %s", windowID)

	var conflict *ConflictError
	assert.True(t, errors.As(err, &conflict))
	assert.Equal(t, windowID, conflict.ConflictingWindowID)
	assert.Contains(t, conflict.Error(), windowID.String())
}

func TestTransientUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Transient(cause)
	assert.True(t, errors.Is(err, cause))
}
