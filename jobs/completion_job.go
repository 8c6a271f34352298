package jobs

import (
	"log"
	"time"

	"github.com/Aristide-Dev/Timmi-sub003/database"
	"github.com/Aristide-Dev/Timmi-sub003/events"
	"github.com/Aristide-Dev/Timmi-sub003/models"
	"github.com/Aristide-Dev/Timmi-sub003/notifications"
)

// SendCompletionNudges reminds professors to mark sessions that ended a
// while ago as completed. Only the professor can advance the booking, so
// this job never mutates state itself.
func SendCompletionNudges() {
	log.Println("Running job: SendCompletionNudges...")

	now := time.Now()

	var overdue []models.Booking
	err := database.DB.
		Where("status = ? AND scheduled_at + (duration_minutes * interval '1 minute') BETWEEN ? AND ?",
			models.BookingConfirmed, now.Add(-75*time.Minute), now.Add(-60*time.Minute)).
		Find(&overdue).Error
	if err != nil {
		log.Printf("Error checking for overdue sessions: %v", err)
		return
	}

	if len(overdue) == 0 {
		return
	}

	for _, booking := range overdue {
		notifications.Dispatch(events.SessionReminder{
			BookingID:   booking.ID,
			ScheduledAt: booking.ScheduledAt,
			Message:     "This session has ended. Please mark it completed or cancel it.",
		}, booking.ProfessorID)
	}

	log.Printf("Nudged %d professor(s) about overdue sessions.", len(overdue))
}
