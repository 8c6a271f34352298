package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityWindow is a weekly recurring (or date-bounded) time range
// during which a professor takes bookings. Times are minutes from midnight,
// same-day only: windows spanning midnight are not supported.
type AvailabilityWindow struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProfessorID uuid.UUID `gorm:"not null;index:idx_windows_professor_day" json:"-"`

	// DayOfWeek: 0 = Sunday ... 6 = Saturday.
	DayOfWeek   int `gorm:"not null;index:idx_windows_professor_day" json:"day_of_week"`
	StartMinute int `gorm:"not null" json:"start_minute"`
	EndMinute   int `gorm:"not null" json:"end_minute"`

	// nil bounds mean the window never expires.
	ValidFrom  *time.Time `json:"valid_from"`
	ValidUntil *time.Time `json:"valid_until"`

	IsRecurring bool `gorm:"default:true" json:"is_recurring"`
	IsOnline    bool `gorm:"default:false" json:"is_online"`
	IsActive    bool `gorm:"default:true" json:"is_active"`

	Professor Professor `gorm:"foreignkey:ProfessorID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
