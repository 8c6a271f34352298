package routes

import (
	"github.com/Aristide-Dev/Timmi-sub003/handlers"
	"github.com/Aristide-Dev/Timmi-sub003/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)
	auth.Get("/me", middleware.Protected(), handlers.GetMe)

	children := api.Group("/children", middleware.Protected())
	children.Post("", handlers.AddChild)
	children.Get("", handlers.GetMyChildren)
	children.Delete("/:childId", handlers.RemoveChild)
}
