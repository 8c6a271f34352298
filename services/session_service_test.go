package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithinCancelGrace(t *testing.T) {
	createdAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	assert.True(t, withinCancelGrace(createdAt, createdAt.Add(1*time.Hour), 24))
	assert.True(t, withinCancelGrace(createdAt, createdAt.Add(24*time.Hour), 24))
	assert.False(t, withinCancelGrace(createdAt, createdAt.Add(24*time.Hour+time.Minute), 24))
	assert.False(t, withinCancelGrace(createdAt, createdAt.Add(48*time.Hour), 24))

	// shorter configured window
	assert.True(t, withinCancelGrace(createdAt, createdAt.Add(90*time.Minute), 2))
	assert.False(t, withinCancelGrace(createdAt, createdAt.Add(3*time.Hour), 2))
}
