package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking is the canonical reservation record. The payer is either a parent
// booking for one of their children, or a direct adult student, never both.
// All money fields are minor currency units, snapshotted at creation time.
type Booking struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ParentID    *uuid.UUID `gorm:"index" json:"parent_id"`
	StudentID   *uuid.UUID `gorm:"index" json:"student_id"`
	ChildID     *uuid.UUID `json:"child_id"`
	ProfessorID uuid.UUID  `gorm:"not null;index" json:"professor_id"`
	SubjectID   uuid.UUID  `gorm:"not null" json:"subject_id"`
	LevelID     uuid.UUID  `gorm:"not null" json:"level_id"`

	ScheduledAt     time.Time `gorm:"not null" json:"scheduled_at"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`

	HourlyRate       int64   `gorm:"not null" json:"hourly_rate"`
	TotalPrice       int64   `gorm:"not null" json:"total_price"`
	CommissionRate   float64 `gorm:"type:numeric(5,4);not null" json:"commission_rate"`
	CommissionAmount int64   `gorm:"not null" json:"commission_amount"`
	PayoutAmount     int64   `gorm:"not null" json:"payout_amount"`

	Status        BookingStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null;default:'pending'" json:"payment_status"`

	ConfirmedAt        *time.Time `json:"confirmed_at"`
	CompletedAt        *time.Time `json:"completed_at"`
	CancelledAt        *time.Time `json:"cancelled_at"`
	CancelledBy        *uuid.UUID `json:"cancelled_by"`
	CancellationReason *string    `gorm:"type:text" json:"cancellation_reason"`

	Notes *string `gorm:"type:text" json:"notes"`

	Parent    *User     `gorm:"foreignkey:ParentID" json:"parent,omitempty"`
	Student   *User     `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Child     *Child    `gorm:"foreignkey:ChildID" json:"child,omitempty"`
	Professor Professor `gorm:"foreignkey:ProfessorID" json:"professor,omitempty"`
	Subject   Subject   `gorm:"foreignkey:SubjectID" json:"subject,omitempty"`
	Level     Level     `gorm:"foreignkey:LevelID" json:"level,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PayerID returns the financially responsible user, whichever side is set.
func (b *Booking) PayerID() uuid.UUID {
	if b.ParentID != nil {
		return *b.ParentID
	}
	if b.StudentID != nil {
		return *b.StudentID
	}
	return uuid.Nil
}
