package models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is the payer's post-completion review of a session, at most one
// per session. Category sub-ratings share the 1-5 scale of the main rating.
type Feedback struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID   uuid.UUID `gorm:"not null;unique" json:"session_id"`
	BookingID   uuid.UUID `gorm:"not null" json:"booking_id"`
	ProfessorID uuid.UUID `gorm:"not null;index" json:"professor_id"`
	AuthorID    uuid.UUID `gorm:"not null" json:"author_id"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`

	TeachingQuality int `gorm:"not null" json:"teaching_quality"`
	Punctuality     int `gorm:"not null" json:"punctuality"`
	Communication   int `gorm:"not null" json:"communication"`
	Patience        int `gorm:"not null" json:"patience"`

	Session Session `gorm:"foreignkey:SessionID" json:"-"`
	Author  User    `gorm:"foreignkey:AuthorID" json:"author,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
