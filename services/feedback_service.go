package services

import (
	"errors"
	"math"
	"time"

	"github.com/Aristide-Dev/Timmi-sub003/apperrors"
	"github.com/Aristide-Dev/Timmi-sub003/events"
	"github.com/Aristide-Dev/Timmi-sub003/models"
	"github.com/Aristide-Dev/Timmi-sub003/notifications"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeedbackInput struct {
	Rating          int
	Comment         string
	TeachingQuality int
	Punctuality     int
	Communication   int
	Patience        int
}

func validateFeedbackInput(in FeedbackInput) error {
	ratings := map[string]int{
		"rating":           in.Rating,
		"teaching_quality": in.TeachingQuality,
		"punctuality":      in.Punctuality,
		"communication":    in.Communication,
		"patience":         in.Patience,
	}
	for name, value := range ratings {
		if value < 1 || value > 5 {
			return apperrors.Validation("%s must be between 1 and 5", name)
		}
	}
	return nil
}

// roundHalfUp1 rounds to one decimal, half away from zero upward.
func roundHalfUp1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

// SubmitFeedback records the payer's one review of a completed session and
// recomputes the professor's aggregate rating in the same transaction.
func SubmitFeedback(db *gorm.DB, now time.Time, actor Actor, sessionID uuid.UUID, in FeedbackInput) (*models.Feedback, error) {
	if err := validateFeedbackInput(in); err != nil {
		return nil, err
	}

	var feedback models.Feedback
	var professorID uuid.UUID
	err := db.Transaction(func(tx *gorm.DB) error {
		var session models.Session
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Booking").
			First(&session, "id = ?", sessionID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("session not found")
			}
			return apperrors.Transient(err)
		}

		booking := session.Booking
		if booking.PayerID() != actor.ID {
			return apperrors.Authorization("only the payer of this booking can leave feedback")
		}
		if session.Status != models.SessionCompleted || booking.Status != models.BookingCompleted {
			return apperrors.NotCompleted("feedback is only accepted once the session is completed (session is %s)", session.Status)
		}

		var existing models.Feedback
		if err := tx.Where("session_id = ?", session.ID).First(&existing).Error; err == nil {
			return apperrors.DuplicateFeedback("feedback for this session was already submitted")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Transient(err)
		}

		professorID = booking.ProfessorID
		feedback = models.Feedback{
			SessionID:       session.ID,
			BookingID:       booking.ID,
			ProfessorID:     professorID,
			AuthorID:        actor.ID,
			Rating:          in.Rating,
			Comment:         in.Comment,
			TeachingQuality: in.TeachingQuality,
			Punctuality:     in.Punctuality,
			Communication:   in.Communication,
			Patience:        in.Patience,
		}
		if err := tx.Create(&feedback).Error; err != nil {
			return apperrors.Transient(err)
		}

		if _, _, err := RecomputeRating(tx, professorID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go notifications.Dispatch(events.FeedbackSubmitted{
		FeedbackID:  feedback.ID,
		SessionID:   feedback.SessionID,
		ProfessorID: professorID,
		Rating:      feedback.Rating,
		At:          now,
	}, professorID)

	return &feedback, nil
}

// RecomputeRating recalculates the professor's denormalized rating from the
// full feedback set. It is a pure recomputation: re-running it with no new
// feedback yields the same result, so concurrent last-writer-wins races are
// harmless.
func RecomputeRating(db *gorm.DB, professorID uuid.UUID) (float32, int64, error) {
	var result struct {
		Avg   float64
		Total int64
	}
	err := db.Model(&models.Feedback{}).
		Where("professor_id = ?", professorID).
		Select("coalesce(avg(rating), 0) as avg, count(*) as total").
		Scan(&result).Error
	if err != nil {
		return 0, 0, apperrors.Transient(err)
	}

	rounded := float32(roundHalfUp1(result.Avg))
	err = db.Model(&models.Professor{}).
		Where("user_id = ?", professorID).
		Updates(map[string]interface{}{
			"avg_rating":    rounded,
			"total_reviews": result.Total,
		}).Error
	if err != nil {
		return 0, 0, apperrors.Transient(err)
	}
	return rounded, result.Total, nil
}
