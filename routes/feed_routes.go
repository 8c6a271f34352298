package routes

import (
	"github.com/Aristide-Dev/Timmi-sub003/handlers"
	"github.com/Aristide-Dev/Timmi-sub003/middleware"
	"github.com/gofiber/fiber/v2"
)

// FeedRoutes exposes the live domain-event feed over websocket.
func FeedRoutes(app *fiber.App) {
	app.Get("/api/v1/feed", middleware.Protected(), handlers.FeedUpgrade, handlers.FeedSocket())
}
