package routes

import (
	"github.com/Aristide-Dev/Timmi-sub003/handlers"
	"github.com/Aristide-Dev/Timmi-sub003/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	admin := app.Group("/api/v1/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/users", handlers.ListUsers)
	admin.Put("/users/:userId/active", handlers.SetUserActive)

	admin.Get("/professor-applications", handlers.ListProfessorApplications)
	admin.Post("/professor-applications/:professorId/review", handlers.ReviewProfessorApplication)

	admin.Get("/bookings", handlers.ListAllBookings)
	admin.Post("/bookings/:bookingId/cancel", handlers.AdminCancelBooking)
	admin.Put("/bookings/:bookingId/payment-status", handlers.SetBookingPaymentStatus)

	admin.Post("/subjects", handlers.CreateSubject)
	admin.Post("/levels", handlers.CreateLevel)

	admin.Get("/settings", handlers.GetPlatformSettings)
}
