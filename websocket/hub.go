package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Client is one authenticated websocket connection on the event feed.
type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// Delivery is a domain event addressed to one connected user.
type Delivery struct {
	UserID  uuid.UUID   `json:"-"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Deliveries = make(chan Delivery, 64)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case delivery := <-Deliveries:
			clientsMu.RLock()
			conn, ok := clients[delivery.UserID]
			clientsMu.RUnlock()
			if !ok {
				continue
			}
			if err := conn.WriteJSON(delivery); err != nil {
				log.Printf("Error delivering event to client %s: %v", delivery.UserID, err)
				conn.Close()
				clientsMu.Lock()
				delete(clients, delivery.UserID)
				clientsMu.Unlock()
			}
		}
	}
}
