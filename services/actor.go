package services

import (
	"github.com/Aristide-Dev/Timmi-sub003/models"
	"github.com/google/uuid"
)

// Actor identifies who is performing an operation. The web tier builds it
// from the verified JWT claims; services never read ambient request state.
type Actor struct {
	ID   uuid.UUID
	Role string
}

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

func (a Actor) IsProfessor() bool { return a.Role == models.RoleProfessor }

// IsPayer reports whether the actor is the financially responsible side of
// the booking, parent or direct student.
func (a Actor) IsPayer(b *models.Booking) bool {
	if b.ParentID != nil && *b.ParentID == a.ID {
		return true
	}
	return b.StudentID != nil && *b.StudentID == a.ID
}
