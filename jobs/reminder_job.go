package jobs

import (
	"log"
	"time"

	"github.com/Aristide-Dev/Timmi-sub003/database"
	"github.com/Aristide-Dev/Timmi-sub003/events"
	"github.com/Aristide-Dev/Timmi-sub003/models"
	"github.com/Aristide-Dev/Timmi-sub003/notifications"
)

// SendSessionReminders nudges both parties of confirmed bookings starting
// in about an hour. The 5 minute window matches the cron cadence so each
// booking is reminded once.
func SendSessionReminders() {
	log.Println("Running job: SendSessionReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcoming []models.Booking
	err := database.DB.
		Where("status = ? AND scheduled_at BETWEEN ? AND ?", models.BookingConfirmed, lowerBound, upperBound).
		Find(&upcoming).Error
	if err != nil {
		log.Printf("Error checking for upcoming sessions: %v", err)
		return
	}

	for _, booking := range upcoming {
		log.Printf("Sending reminder for booking ID: %s", booking.ID)
		notifications.Dispatch(events.SessionReminder{
			BookingID:   booking.ID,
			ScheduledAt: booking.ScheduledAt,
			Message:     "Your session starts in one hour.",
		}, booking.PayerID(), booking.ProfessorID)
	}
}
