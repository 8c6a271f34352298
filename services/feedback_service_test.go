package services

import (
	"testing"

	"github.com/Aristide-Dev/Timmi-sub003/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFeedbackInput(t *testing.T) {
	valid := FeedbackInput{Rating: 4, TeachingQuality: 5, Punctuality: 3, Communication: 4, Patience: 5}
	require.NoError(t, validateFeedbackInput(valid))

	cases := []struct {
		name string
		in   FeedbackInput
	}{
		{"rating too low", FeedbackInput{Rating: 0, TeachingQuality: 3, Punctuality: 3, Communication: 3, Patience: 3}},
		{"rating too high", FeedbackInput{Rating: 6, TeachingQuality: 3, Punctuality: 3, Communication: 3, Patience: 3}},
		{"category too low", FeedbackInput{Rating: 3, TeachingQuality: 0, Punctuality: 3, Communication: 3, Patience: 3}},
		{"category too high", FeedbackInput{Rating: 3, TeachingQuality: 3, Punctuality: 3, Communication: 3, Patience: 6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateFeedbackInput(tc.in)
			require.Error(t, err)
			assert.IsType(t, &apperrors.ValidationError{}, err)
		})
	}
}

func TestRoundHalfUp1(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{4.5, 4.5},
		{4.44, 4.4},
		{4.45, 4.5},
		{4.46, 4.5},
		{4.04, 4.0},
		{4.05, 4.1},
		{5, 5},
		{0, 0},
		{3.333333, 3.3},
		{3.666666, 3.7},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, roundHalfUp1(tc.in), 1e-9, "rounding %f", tc.in)
	}
}

// The professor's aggregate is always a full recompute, so the rating for a
// given feedback set is the same however many times it is derived.
func TestRatingMeanMatchesSpecExample(t *testing.T) {
	ratings := []int{5, 4}
	var sum int
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))

	assert.InDelta(t, 4.5, roundHalfUp1(mean), 1e-9)
	assert.Equal(t, roundHalfUp1(mean), roundHalfUp1(mean))
}
