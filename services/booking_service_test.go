package services

import (
	"testing"

	"github.com/Aristide-Dev/Timmi-sub003/apperrors"
	"github.com/Aristide-Dev/Timmi-sub003/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePrice(t *testing.T) {
	total, commission, payout := ComputePrice(10000, 45, 0.2)
	assert.Equal(t, int64(7500), total)
	assert.Equal(t, int64(1500), commission)
	assert.Equal(t, int64(6000), payout)

	total, commission, payout = ComputePrice(10000, 60, 0.2)
	assert.Equal(t, int64(10000), total)
	assert.Equal(t, int64(2000), commission)
	assert.Equal(t, int64(8000), payout)
}

func TestComputePriceSumInvariant(t *testing.T) {
	rates := []int64{1, 999, 10000, 12345, 100000}
	durations := []int{30, 45, 55, 90, 125, 240}
	commissions := []float64{0, 0.1, 0.15, 0.2, 0.333}

	for _, rate := range rates {
		for _, duration := range durations {
			for _, commissionRate := range commissions {
				total, commission, payout := ComputePrice(rate, duration, commissionRate)
				assert.Equal(t, total, commission+payout,
					"rate=%d duration=%d commission=%f", rate, duration, commissionRate)
				assert.GreaterOrEqual(t, commission, int64(0))
				assert.GreaterOrEqual(t, payout, int64(0))
			}
		}
	}
}

func TestTransitionAllowed(t *testing.T) {
	cases := []struct {
		from, to models.BookingStatus
		want     bool
	}{
		{models.BookingPending, models.BookingConfirmed, true},
		{models.BookingPending, models.BookingCancelled, true},
		{models.BookingPending, models.BookingCompleted, false},
		{models.BookingConfirmed, models.BookingCompleted, true},
		{models.BookingConfirmed, models.BookingCancelled, true},
		{models.BookingConfirmed, models.BookingPending, false},
		{models.BookingCompleted, models.BookingCancelled, false},
		{models.BookingCompleted, models.BookingConfirmed, false},
		{models.BookingCancelled, models.BookingConfirmed, false},
		{models.BookingCancelled, models.BookingCompleted, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, transitionAllowed(tc.from, tc.to), "%s → %s", tc.from, tc.to)
	}
}

func TestPaymentTransitionAllowed(t *testing.T) {
	assert.True(t, paymentTransitionAllowed(models.PaymentPending, models.PaymentPaid))
	assert.True(t, paymentTransitionAllowed(models.PaymentPaid, models.PaymentRefunded))
	assert.False(t, paymentTransitionAllowed(models.PaymentPending, models.PaymentRefunded))
	assert.False(t, paymentTransitionAllowed(models.PaymentRefunded, models.PaymentPaid))
	assert.False(t, paymentTransitionAllowed(models.PaymentPaid, models.PaymentPending))
}

func TestValidateBookingPayer(t *testing.T) {
	childID := uuid.New()

	parent := Actor{ID: uuid.New(), Role: models.RoleParent}
	require.NoError(t, validateBookingPayer(parent, &childID))

	err := validateBookingPayer(parent, nil)
	require.Error(t, err)
	assert.IsType(t, &apperrors.ValidationError{}, err)

	student := Actor{ID: uuid.New(), Role: models.RoleStudent}
	require.NoError(t, validateBookingPayer(student, nil))

	err = validateBookingPayer(student, &childID)
	require.Error(t, err)
	assert.IsType(t, &apperrors.ValidationError{}, err)

	professor := Actor{ID: uuid.New(), Role: models.RoleProfessor}
	err = validateBookingPayer(professor, nil)
	require.Error(t, err)
	assert.IsType(t, &apperrors.AuthorizationError{}, err)
}

func TestActorIsPayer(t *testing.T) {
	parentID := uuid.New()
	studentID := uuid.New()

	parentBooking := &models.Booking{ParentID: &parentID}
	assert.True(t, Actor{ID: parentID, Role: models.RoleParent}.IsPayer(parentBooking))
	assert.False(t, Actor{ID: uuid.New(), Role: models.RoleParent}.IsPayer(parentBooking))

	studentBooking := &models.Booking{StudentID: &studentID}
	assert.True(t, Actor{ID: studentID, Role: models.RoleStudent}.IsPayer(studentBooking))
	assert.False(t, Actor{ID: parentID, Role: models.RoleParent}.IsPayer(studentBooking))
}
