package notifications

import (
	"log"

	"github.com/Aristide-Dev/Timmi-sub003/events"
	ws "github.com/Aristide-Dev/Timmi-sub003/websocket"
	"github.com/google/uuid"
)

// Dispatch hands a domain event to the notification boundary: it is logged
// and pushed to each recipient's live feed if they are connected. Email/SMS
// delivery is an external collaborator's job; the contract stops here.
func Dispatch(event events.Event, recipients ...uuid.UUID) {
	log.Printf("event %s → %d recipient(s)", event.EventName(), len(recipients))

	for _, userID := range recipients {
		if userID == uuid.Nil {
			continue
		}
		select {
		case ws.Deliveries <- ws.Delivery{UserID: userID, Event: event.EventName(), Payload: event}:
		default:
			log.Printf("event feed full, dropping %s for %s", event.EventName(), userID)
		}
	}
}
