package services

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Aristide-Dev/Timmi-sub003/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWindowInput(t *testing.T) {
	valid := WindowInput{DayOfWeek: 1, StartMinute: 9 * 60, EndMinute: 12 * 60}
	require.NoError(t, validateWindowInput(valid))

	cases := []struct {
		name string
		in   WindowInput
	}{
		{"day below range", WindowInput{DayOfWeek: -1, StartMinute: 60, EndMinute: 120}},
		{"day above range", WindowInput{DayOfWeek: 7, StartMinute: 60, EndMinute: 120}},
		{"negative start", WindowInput{DayOfWeek: 2, StartMinute: -10, EndMinute: 120}},
		{"end past midnight", WindowInput{DayOfWeek: 2, StartMinute: 23 * 60, EndMinute: 25 * 60}},
		{"zero duration", WindowInput{DayOfWeek: 2, StartMinute: 600, EndMinute: 600}},
		{"start after end", WindowInput{DayOfWeek: 2, StartMinute: 700, EndMinute: 600}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateWindowInput(tc.in)
			require.Error(t, err)
			assert.IsType(t, &apperrors.ValidationError{}, err)
		})
	}
}

func TestValidateWindowInputDateRange(t *testing.T) {
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(0, 3, 0)

	in := WindowInput{DayOfWeek: 3, StartMinute: 540, EndMinute: 720, ValidFrom: &from, ValidUntil: &until}
	require.NoError(t, validateWindowInput(in))

	in.ValidFrom = &until
	in.ValidUntil = &from
	err := validateWindowInput(in)
	require.Error(t, err)
	assert.IsType(t, &apperrors.ValidationError{}, err)
}

func TestWindowsOverlap(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"identical", 540, 600, 540, 600, true},
		{"contained", 540, 720, 600, 660, true},
		{"partial left", 540, 600, 570, 660, true},
		{"partial right", 570, 660, 540, 600, true},
		{"touching end-to-start", 540, 600, 600, 660, false},
		{"touching start-to-end", 600, 660, 540, 600, false},
		{"disjoint", 540, 600, 720, 780, false},
		{"one-minute overlap", 540, 601, 600, 660, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, windowsOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
		})
	}
}

// TestWindowSetStaysDisjoint drives random add attempts through the same
// overlap rule the index applies and checks the accepted set is always
// pairwise disjoint.
func TestWindowSetStaysDisjoint(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	type window struct{ start, end int }
	var accepted []window

	for i := 0; i < 500; i++ {
		start := rng.Intn(minutesPerDay - 30)
		end := start + 30 + rng.Intn(180)
		if end > minutesPerDay {
			end = minutesPerDay
		}

		conflict := false
		for _, w := range accepted {
			if windowsOverlap(start, end, w.start, w.end) {
				conflict = true
				break
			}
		}
		if !conflict {
			accepted = append(accepted, window{start, end})
		}
	}

	require.NotEmpty(t, accepted)
	for i := range accepted {
		for j := i + 1; j < len(accepted); j++ {
			assert.False(t,
				windowsOverlap(accepted[i].start, accepted[i].end, accepted[j].start, accepted[j].end),
				"windows %v and %v overlap", accepted[i], accepted[j])
		}
	}
}
