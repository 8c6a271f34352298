package models

import (
	"time"

	"github.com/google/uuid"
)

// Level is a school level (e.g. primary, college, lycee, university).
type Level struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"size:100;not null;unique" json:"name"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
