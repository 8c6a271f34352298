package events

import (
	"time"

	"github.com/Aristide-Dev/Timmi-sub003/models"
	"github.com/google/uuid"
)

// Event is a domain fact handed to the notification dispatcher. The core
// never sends notifications itself; it emits these and moves on.
type Event interface {
	EventName() string
}

type BookingCreated struct {
	BookingID   uuid.UUID `json:"booking_id"`
	ProfessorID uuid.UUID `json:"professor_id"`
	PayerID     uuid.UUID `json:"payer_id"`
	TotalPrice  int64     `json:"total_price"`
	At          time.Time `json:"at"`
}

func (BookingCreated) EventName() string { return "booking.created" }

type BookingStatusChanged struct {
	BookingID uuid.UUID            `json:"booking_id"`
	OldStatus models.BookingStatus `json:"old_status"`
	NewStatus models.BookingStatus `json:"new_status"`
	ActorID   uuid.UUID            `json:"actor_id"`
	At        time.Time            `json:"at"`
}

func (BookingStatusChanged) EventName() string { return "booking.status_changed" }

type FeedbackSubmitted struct {
	FeedbackID  uuid.UUID `json:"feedback_id"`
	SessionID   uuid.UUID `json:"session_id"`
	ProfessorID uuid.UUID `json:"professor_id"`
	Rating      int       `json:"rating"`
	At          time.Time `json:"at"`
}

func (FeedbackSubmitted) EventName() string { return "feedback.submitted" }

type SessionReminder struct {
	BookingID   uuid.UUID `json:"booking_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Message     string    `json:"message"`
}

func (SessionReminder) EventName() string { return "session.reminder" }
