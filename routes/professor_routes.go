package routes

import (
	"github.com/Aristide-Dev/Timmi-sub003/handlers"
	"github.com/Aristide-Dev/Timmi-sub003/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfessorRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/professors", handlers.ListActiveProfessors)
	api.Get("/professors/:professorId", handlers.GetProfessorProfile)
	api.Get("/professors/:professorId/availability", handlers.GetProfessorAvailability)
	api.Get("/professors/:professorId/reviews", handlers.GetProfessorReviews)
	api.Get("/subjects", handlers.ListSubjects)
	api.Get("/levels", handlers.ListLevels)

	professor := api.Group("/professor", middleware.Protected())
	professor.Post("/apply", handlers.ApplyToBeAProfessor)
	professor.Get("/bookings", middleware.ProfessorRequired(), handlers.GetMyProfessorBookings)
	professor.Get("/reviews/me", middleware.ProfessorRequired(), handlers.GetMyReviews)

	profile := professor.Group("/profile", middleware.ProfessorRequired())
	profile.Get("/me", handlers.GetMyProfessorProfile)
	profile.Put("/me", handlers.UpdateMyProfessorProfile)

	availability := professor.Group("/availability", middleware.ProfessorRequired())
	availability.Post("", handlers.CreateAvailabilityWindow)
	availability.Get("/me", handlers.GetMyAvailability)
	availability.Put("/:windowId", handlers.UpdateAvailabilityWindow)
	availability.Delete("/:windowId", handlers.DeleteAvailabilityWindow)

	subjects := professor.Group("/subjects", middleware.ProfessorRequired())
	subjects.Post("", handlers.AddSubjectToProfile)
	subjects.Delete("/:subjectId", handlers.RemoveSubjectFromProfile)

	levels := professor.Group("/levels", middleware.ProfessorRequired())
	levels.Post("", handlers.AddLevelToProfile)
	levels.Delete("/:levelId", handlers.RemoveLevelFromProfile)
}
