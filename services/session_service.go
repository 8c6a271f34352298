package services

import (
	"errors"
	"time"

	"github.com/Aristide-Dev/Timmi-sub003/apperrors"
	config "github.com/Aristide-Dev/Timmi-sub003/configs"
	"github.com/Aristide-Dev/Timmi-sub003/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// withinCancelGrace reports whether a session created at createdAt can
// still be cancelled at now.
func withinCancelGrace(createdAt, now time.Time, graceHours int) bool {
	return now.Sub(createdAt) <= time.Duration(graceHours)*time.Hour
}

func findSession(db *gorm.DB, sessionID uuid.UUID) (*models.Session, error) {
	var session models.Session
	if err := db.Preload("Booking").First(&session, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("session not found")
		}
		return nil, apperrors.Transient(err)
	}
	return &session, nil
}

// SetMeetingLink attaches the meeting URL. Professor only, before the
// session finishes.
func SetMeetingLink(db *gorm.DB, actor Actor, sessionID uuid.UUID, link string) (*models.Session, error) {
	session, err := findSession(db, sessionID)
	if err != nil {
		return nil, err
	}
	if !actor.IsProfessor() || session.Booking.ProfessorID != actor.ID {
		return nil, apperrors.Authorization("only the session's professor can set the meeting link")
	}
	if session.Status == models.SessionCompleted || session.Status == models.SessionCancelled {
		return nil, apperrors.InvalidTransition("cannot update a %s session", session.Status)
	}

	session.MeetingLink = &link
	if err := db.Save(session).Error; err != nil {
		return nil, apperrors.Transient(err)
	}
	return session, nil
}

func UpdateSessionNotes(db *gorm.DB, actor Actor, sessionID uuid.UUID, notes string) (*models.Session, error) {
	session, err := findSession(db, sessionID)
	if err != nil {
		return nil, err
	}
	if !actor.IsProfessor() || session.Booking.ProfessorID != actor.ID {
		return nil, apperrors.Authorization("only the session's professor can update notes")
	}

	// Notes remain editable on terminal sessions; they are the one thing a
	// completed record still accepts.
	session.Notes = &notes
	if err := db.Save(session).Error; err != nil {
		return nil, apperrors.Transient(err)
	}
	return session, nil
}

// StartSession moves a scheduled session to in_progress when the class
// actually begins.
func StartSession(db *gorm.DB, actor Actor, sessionID uuid.UUID) (*models.Session, error) {
	session, err := findSession(db, sessionID)
	if err != nil {
		return nil, err
	}
	if !actor.IsProfessor() || session.Booking.ProfessorID != actor.ID {
		return nil, apperrors.Authorization("only the session's professor can start it")
	}
	if session.Status != models.SessionScheduled {
		return nil, apperrors.InvalidTransition("cannot start a %s session", session.Status)
	}
	if session.Booking.Status != models.BookingConfirmed {
		return nil, apperrors.InvalidTransition("session's booking is %s, not confirmed", session.Booking.Status)
	}

	session.Status = models.SessionInProgress
	if err := db.Save(session).Error; err != nil {
		return nil, apperrors.Transient(err)
	}
	return session, nil
}

// CancelSession cancels the session and its booking together. Rejected once
// the session is older than the cancellation grace window.
func CancelSession(db *gorm.DB, now time.Time, actor Actor, sessionID uuid.UUID, reason string) (*models.Session, error) {
	session, err := findSession(db, sessionID)
	if err != nil {
		return nil, err
	}

	if !withinCancelGrace(session.CreatedAt, now, config.SessionCancelGraceHours()) {
		return nil, apperrors.InvalidTransition("the cancellation window for this session has elapsed")
	}

	// Ownership, reason rules and the booking state guard all live in the
	// booking lifecycle; the session follows its booking inside that
	// transaction.
	if _, err := CancelBooking(db, now, actor, session.BookingID, reason); err != nil {
		return nil, err
	}

	return findSession(db, sessionID)
}
