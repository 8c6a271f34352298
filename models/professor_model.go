package models

import (
	"time"

	"github.com/google/uuid"
)

// Professor profile statuses (application moderation).
const (
	ProfessorPending  = "pending"
	ProfessorApproved = "approved"
	ProfessorRejected = "rejected"
)

type Professor struct {
	UserID   uuid.UUID `gorm:"primary_key" json:"user_id"`
	Headline *string   `gorm:"size:255" json:"headline"`
	Bio      *string   `gorm:"type:text" json:"bio"`
	Status   string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	// HourlyRate is in minor currency units (e.g. cents). Bookings snapshot
	// it at creation time; later changes never touch existing bookings.
	HourlyRate int64 `gorm:"not null;default:0" json:"hourly_rate"`

	AvgRating    float32 `gorm:"default:0" json:"avg_rating"`
	TotalReviews int     `gorm:"default:0" json:"total_reviews"`

	Subjects []*Subject `gorm:"many2many:professor_subjects;" json:"subjects"`
	Levels   []*Level   `gorm:"many2many:professor_levels;" json:"levels"`
	User     User       `gorm:"foreignkey:UserID" json:"user"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
