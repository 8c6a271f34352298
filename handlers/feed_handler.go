package handlers

import (
	ws "github.com/Aristide-Dev/Timmi-sub003/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// FeedUpgrade gates the event-feed endpoint to websocket upgrades and
// stashes the authenticated user for the connection handler.
func FeedUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	c.Locals("feed_user_id", currentActor(c).ID)
	return c.Next()
}

// FeedSocket keeps the connection registered with the hub until the client
// goes away. The feed is push-only; inbound frames are drained and ignored.
func FeedSocket() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID := conn.Locals("feed_user_id").(uuid.UUID)

		client := &ws.Client{UserID: userID, Conn: conn}
		ws.Register <- client
		defer func() {
			ws.Unregister <- client
			conn.Close()
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	})
}
