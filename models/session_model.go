package models

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionScheduled  SessionStatus = "scheduled"
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionCancelled  SessionStatus = "cancelled"
)

// Session is the execution record of a confirmed booking, created when the
// professor confirms. It never reaches completed except through the booking
// lifecycle, which advances both rows in one transaction.
type Session struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID     `gorm:"not null;unique" json:"booking_id"`
	Status    SessionStatus `gorm:"size:20;not null;default:'scheduled'" json:"status"`

	MeetingLink *string `gorm:"size:255" json:"meeting_link"`
	Notes       *string `gorm:"type:text" json:"notes"`

	CancelledAt        *time.Time `json:"cancelled_at"`
	CancellationReason *string    `gorm:"type:text" json:"cancellation_reason"`

	Booking Booking `gorm:"foreignkey:BookingID" json:"booking,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
