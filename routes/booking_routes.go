package routes

import (
	"github.com/Aristide-Dev/Timmi-sub003/handlers"
	"github.com/Aristide-Dev/Timmi-sub003/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Post("", handlers.CreateBooking)
	booking.Get("/me", handlers.GetMyBookings)
	booking.Patch("/:bookingId", handlers.EditBooking)
	booking.Post("/:bookingId/cancel", handlers.CancelBooking)

	professorBooking := api.Group("/professor/bookings", middleware.Protected(), middleware.ProfessorRequired())
	professorBooking.Post("/:bookingId/confirm", handlers.ConfirmBooking)
	professorBooking.Post("/:bookingId/complete", handlers.CompleteBooking)

	session := api.Group("/sessions", middleware.Protected())
	session.Get("/:sessionId", handlers.GetSession)
	session.Post("/:sessionId/cancel", handlers.CancelSession)
	session.Post("/:sessionId/feedback", handlers.SubmitFeedback)
	session.Put("/:sessionId/meeting-link", middleware.ProfessorRequired(), handlers.SetMeetingLink)
	session.Put("/:sessionId/notes", middleware.ProfessorRequired(), handlers.UpdateSessionNotes)
	session.Post("/:sessionId/start", middleware.ProfessorRequired(), handlers.StartSession)
}
