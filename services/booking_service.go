package services

import (
	"errors"
	"math"
	"time"

	"github.com/Aristide-Dev/Timmi-sub003/apperrors"
	config "github.com/Aristide-Dev/Timmi-sub003/configs"
	"github.com/Aristide-Dev/Timmi-sub003/events"
	"github.com/Aristide-Dev/Timmi-sub003/models"
	"github.com/Aristide-Dev/Timmi-sub003/notifications"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	MinBookingMinutes = 30
	MaxBookingMinutes = 240
)

// ComputePrice derives the money snapshot for a booking. Amounts are minor
// currency units; payout is the remainder so the three always sum exactly.
func ComputePrice(hourlyRate int64, durationMinutes int, commissionRate float64) (total, commission, payout int64) {
	total = int64(math.Round(float64(hourlyRate) * float64(durationMinutes) / 60.0))
	commission = int64(math.Round(float64(total) * commissionRate))
	payout = total - commission
	return total, commission, payout
}

// transitionAllowed is the booking state machine. Completed and cancelled
// are terminal.
func transitionAllowed(from, to models.BookingStatus) bool {
	switch from {
	case models.BookingPending:
		return to == models.BookingConfirmed || to == models.BookingCancelled
	case models.BookingConfirmed:
		return to == models.BookingCompleted || to == models.BookingCancelled
	case models.BookingCompleted, models.BookingCancelled:
		return false
	}
	return false
}

func paymentTransitionAllowed(from, to models.PaymentStatus) bool {
	switch from {
	case models.PaymentPending:
		return to == models.PaymentPaid
	case models.PaymentPaid:
		return to == models.PaymentRefunded
	case models.PaymentRefunded:
		return false
	}
	return false
}

type CreateBookingInput struct {
	ProfessorID     uuid.UUID
	SubjectID       uuid.UUID
	LevelID         uuid.UUID
	ChildID         *uuid.UUID
	ScheduledAt     time.Time
	DurationMinutes int
	Notes           *string
}

// validateBookingPayer enforces the parent-with-child / direct-student
// exclusivity. Child ownership is checked later, inside the transaction.
func validateBookingPayer(actor Actor, childID *uuid.UUID) error {
	switch actor.Role {
	case models.RoleParent:
		if childID == nil {
			return apperrors.Validation("a parent booking must name the child attending the session")
		}
	case models.RoleStudent:
		if childID != nil {
			return apperrors.Validation("a direct student booking cannot name a child")
		}
	default:
		return apperrors.Authorization("only parents and students can create bookings")
	}
	return nil
}

func lockBooking(tx *gorm.DB, bookingID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, "id = ?", bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("booking not found")
		}
		return nil, apperrors.Transient(err)
	}
	return &booking, nil
}

func CreateBooking(db *gorm.DB, now time.Time, actor Actor, in CreateBookingInput) (*models.Booking, error) {
	if err := validateBookingPayer(actor, in.ChildID); err != nil {
		return nil, err
	}
	if in.DurationMinutes < MinBookingMinutes || in.DurationMinutes > MaxBookingMinutes {
		return nil, apperrors.Validation("duration must be between %d and %d minutes", MinBookingMinutes, MaxBookingMinutes)
	}

	var booking models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		var professorUser models.User
		if err := tx.First(&professorUser, "id = ?", in.ProfessorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("professor not found")
			}
			return apperrors.Transient(err)
		}
		if professorUser.Role != models.RoleProfessor {
			return apperrors.Validation("the requested user is not a professor")
		}

		var professor models.Professor
		if err := tx.First(&professor, "user_id = ?", in.ProfessorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("professor profile not found")
			}
			return apperrors.Transient(err)
		}
		if professor.Status != models.ProfessorApproved {
			return apperrors.Validation("this professor is not accepting bookings yet")
		}

		if in.ChildID != nil {
			var child models.Child
			if err := tx.First(&child, "id = ?", *in.ChildID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NotFound("child not found")
				}
				return apperrors.Transient(err)
			}
			if child.ParentID != actor.ID {
				return apperrors.Authorization("this child is not registered under your account")
			}
		}

		if err := tx.First(&models.Subject{}, "id = ?", in.SubjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("subject not found")
			}
			return apperrors.Transient(err)
		}
		if err := tx.First(&models.Level{}, "id = ?", in.LevelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("level not found")
			}
			return apperrors.Transient(err)
		}

		commissionRate := config.CommissionRate()
		total, commission, payout := ComputePrice(professor.HourlyRate, in.DurationMinutes, commissionRate)

		booking = models.Booking{
			ProfessorID:      in.ProfessorID,
			SubjectID:        in.SubjectID,
			LevelID:          in.LevelID,
			ChildID:          in.ChildID,
			ScheduledAt:      in.ScheduledAt,
			DurationMinutes:  in.DurationMinutes,
			HourlyRate:       professor.HourlyRate,
			TotalPrice:       total,
			CommissionRate:   commissionRate,
			CommissionAmount: commission,
			PayoutAmount:     payout,
			Status:           models.BookingPending,
			PaymentStatus:    models.PaymentPending,
			Notes:            in.Notes,
		}
		if actor.Role == models.RoleParent {
			id := actor.ID
			booking.ParentID = &id
		} else {
			id := actor.ID
			booking.StudentID = &id
		}

		if err := tx.Create(&booking).Error; err != nil {
			return apperrors.Transient(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go notifications.Dispatch(events.BookingCreated{
		BookingID:   booking.ID,
		ProfessorID: booking.ProfessorID,
		PayerID:     booking.PayerID(),
		TotalPrice:  booking.TotalPrice,
		At:          now,
	}, booking.ProfessorID, booking.PayerID())

	return &booking, nil
}

// ConfirmBooking is the professor accepting a pending booking. The 1:1
// session record is created here, in the same transaction.
func ConfirmBooking(db *gorm.DB, now time.Time, actor Actor, bookingID uuid.UUID) (*models.Booking, error) {
	var booking *models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = lockBooking(tx, bookingID)
		if err != nil {
			return err
		}
		if booking.ProfessorID != actor.ID || !actor.IsProfessor() {
			return apperrors.Authorization("only the booked professor can confirm this booking")
		}
		if !transitionAllowed(booking.Status, models.BookingConfirmed) {
			return apperrors.InvalidTransition("cannot confirm a %s booking", booking.Status)
		}

		booking.Status = models.BookingConfirmed
		booking.ConfirmedAt = &now
		if err := tx.Save(booking).Error; err != nil {
			return apperrors.Transient(err)
		}

		session := models.Session{BookingID: booking.ID, Status: models.SessionScheduled}
		if err := tx.Create(&session).Error; err != nil {
			return apperrors.Transient(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go notifications.Dispatch(events.BookingStatusChanged{
		BookingID: booking.ID,
		OldStatus: models.BookingPending,
		NewStatus: models.BookingConfirmed,
		ActorID:   actor.ID,
		At:        now,
	}, booking.PayerID(), booking.ProfessorID)

	return booking, nil
}

// CompleteBooking advances a confirmed booking and its session together.
func CompleteBooking(db *gorm.DB, now time.Time, actor Actor, bookingID uuid.UUID) (*models.Booking, error) {
	var booking *models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = lockBooking(tx, bookingID)
		if err != nil {
			return err
		}
		if booking.ProfessorID != actor.ID || !actor.IsProfessor() {
			return apperrors.Authorization("only the booked professor can complete this booking")
		}
		if !transitionAllowed(booking.Status, models.BookingCompleted) {
			return apperrors.InvalidTransition("cannot complete a %s booking", booking.Status)
		}

		booking.Status = models.BookingCompleted
		booking.CompletedAt = &now
		if err := tx.Save(booking).Error; err != nil {
			return apperrors.Transient(err)
		}

		err = tx.Model(&models.Session{}).
			Where("booking_id = ?", booking.ID).
			Updates(map[string]interface{}{"status": models.SessionCompleted}).Error
		if err != nil {
			return apperrors.Transient(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go notifications.Dispatch(events.BookingStatusChanged{
		BookingID: booking.ID,
		OldStatus: models.BookingConfirmed,
		NewStatus: models.BookingCompleted,
		ActorID:   actor.ID,
		At:        now,
	}, booking.PayerID(), booking.ProfessorID)

	return booking, nil
}

// CancelBooking is available to the payer, the professor and admins while
// the booking is pending or confirmed. Professors and admins must give a
// reason; payers may cancel silently.
func CancelBooking(db *gorm.DB, now time.Time, actor Actor, bookingID uuid.UUID, reason string) (*models.Booking, error) {
	var booking *models.Booking
	var oldStatus models.BookingStatus
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = lockBooking(tx, bookingID)
		if err != nil {
			return err
		}

		isProfessor := actor.IsProfessor() && booking.ProfessorID == actor.ID
		if !actor.IsPayer(booking) && !isProfessor && !actor.IsAdmin() {
			return apperrors.Authorization("you are not a party to this booking")
		}
		if (isProfessor || actor.IsAdmin()) && reason == "" {
			return apperrors.Validation("a cancellation reason is required")
		}
		if !transitionAllowed(booking.Status, models.BookingCancelled) {
			return apperrors.InvalidTransition("cannot cancel a %s booking", booking.Status)
		}

		oldStatus = booking.Status
		booking.Status = models.BookingCancelled
		booking.CancelledAt = &now
		actorID := actor.ID
		booking.CancelledBy = &actorID
		if reason != "" {
			booking.CancellationReason = &reason
		}
		if err := tx.Save(booking).Error; err != nil {
			return apperrors.Transient(err)
		}

		err = tx.Model(&models.Session{}).
			Where("booking_id = ? AND status IN ?", booking.ID,
				[]models.SessionStatus{models.SessionScheduled, models.SessionInProgress}).
			Updates(map[string]interface{}{"status": models.SessionCancelled, "cancelled_at": now}).Error
		if err != nil {
			return apperrors.Transient(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go notifications.Dispatch(events.BookingStatusChanged{
		BookingID: booking.ID,
		OldStatus: oldStatus,
		NewStatus: models.BookingCancelled,
		ActorID:   actor.ID,
		At:        now,
	}, booking.PayerID(), booking.ProfessorID)

	return booking, nil
}

type EditBookingInput struct {
	ChildID         *uuid.UUID
	SubjectID       *uuid.UUID
	LevelID         *uuid.UUID
	DurationMinutes *int
	Notes           *string
}

// EditBooking lets the payer adjust a booking while it is still pending.
// The price is recomputed from the rate and commission frozen at creation.
func EditBooking(db *gorm.DB, actor Actor, bookingID uuid.UUID, in EditBookingInput) (*models.Booking, error) {
	var booking *models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = lockBooking(tx, bookingID)
		if err != nil {
			return err
		}
		if !actor.IsPayer(booking) {
			return apperrors.Authorization("only the payer can edit this booking")
		}
		if booking.Status != models.BookingPending {
			return apperrors.InvalidTransition("only pending bookings can be edited")
		}

		if in.ChildID != nil {
			if booking.ParentID == nil {
				return apperrors.Validation("a direct student booking cannot name a child")
			}
			var child models.Child
			if err := tx.First(&child, "id = ?", *in.ChildID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NotFound("child not found")
				}
				return apperrors.Transient(err)
			}
			if child.ParentID != actor.ID {
				return apperrors.Authorization("this child is not registered under your account")
			}
			booking.ChildID = in.ChildID
		}
		if in.SubjectID != nil {
			if err := tx.First(&models.Subject{}, "id = ?", *in.SubjectID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NotFound("subject not found")
				}
				return apperrors.Transient(err)
			}
			booking.SubjectID = *in.SubjectID
		}
		if in.LevelID != nil {
			if err := tx.First(&models.Level{}, "id = ?", *in.LevelID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NotFound("level not found")
				}
				return apperrors.Transient(err)
			}
			booking.LevelID = *in.LevelID
		}
		if in.DurationMinutes != nil {
			if *in.DurationMinutes < MinBookingMinutes || *in.DurationMinutes > MaxBookingMinutes {
				return apperrors.Validation("duration must be between %d and %d minutes", MinBookingMinutes, MaxBookingMinutes)
			}
			booking.DurationMinutes = *in.DurationMinutes
		}
		if in.Notes != nil {
			booking.Notes = in.Notes
		}

		total, commission, payout := ComputePrice(booking.HourlyRate, booking.DurationMinutes, booking.CommissionRate)
		booking.TotalPrice = total
		booking.CommissionAmount = commission
		booking.PayoutAmount = payout

		if err := tx.Save(booking).Error; err != nil {
			return apperrors.Transient(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// SetPaymentStatus records the outcome reported by the external payment
// collaborator. Admin-only; payment state moves pending→paid→refunded.
func SetPaymentStatus(db *gorm.DB, actor Actor, bookingID uuid.UUID, status models.PaymentStatus) (*models.Booking, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.Authorization("only administrators can set payment status")
	}

	var booking *models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = lockBooking(tx, bookingID)
		if err != nil {
			return err
		}
		if !paymentTransitionAllowed(booking.PaymentStatus, status) {
			return apperrors.InvalidTransition("cannot move payment from %s to %s", booking.PaymentStatus, status)
		}
		booking.PaymentStatus = status
		if err := tx.Save(booking).Error; err != nil {
			return apperrors.Transient(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}
