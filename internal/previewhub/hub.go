// Package previewhub pushes saved specification documents to connected live
// preview viewers. Saves are announced on a per-slug Redis pub/sub channel;
// the hub fans each event out to every websocket client watching that slug,
// across every server instance.
package previewhub

import (
	"encoding/json"
	"log"

	"tafseel/backend/internal/models"
	"tafseel/backend/internal/storage"
)

// Hub tracks connected preview viewers and routes update events to them.
type Hub struct {
	// Clients holds every connected viewer, keyed by viewer ID.
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client

	Storage *storage.Service

	pubSubCh chan models.SpecUpdate
}

// NewHub creates a hub over the given storage service (used for its Redis
// subscription).
func NewHub(s *storage.Service) *Hub {
	return &Hub{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		Storage:      s,
		pubSubCh:     make(chan models.SpecUpdate),
	}
}

// startPubSubListener runs a goroutine that feeds Redis update events into
// the hub's main loop.
func (h *Hub) startPubSubListener() {
	go func() {
		pubsub := h.Storage.SubscribeToSpecUpdates()
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var update models.SpecUpdate
			if err := json.Unmarshal([]byte(msg.Payload), &update); err != nil {
				log.Printf("Error unmarshalling spec update event: %v", err)
				continue
			}
			h.pubSubCh <- update
		}
	}()
}

// Run is the hub's main dispatch loop. It must run in its own goroutine.
func (h *Hub) Run() {
	h.startPubSubListener()

	for {
		select {
		case client := <-h.RegisterCh:
			h.Clients[client.GetViewerID()] = client
			log.Printf("INFO: Preview viewer %s subscribed to spec %s", client.GetViewerID(), client.GetSlug())

		case client := <-h.UnregisterCh:
			if _, ok := h.Clients[client.GetViewerID()]; ok {
				delete(h.Clients, client.GetViewerID())
				client.Close()
			}

		case update := <-h.pubSubCh:
			h.Broadcast(update)
		}
	}
}

// Broadcast delivers an update to every client watching its slug. A viewer
// whose send buffer is full is considered stalled and dropped.
func (h *Hub) Broadcast(update models.SpecUpdate) {
	for _, client := range h.Clients {
		if client.GetSlug() != update.Slug {
			continue
		}
		select {
		case client.GetSendChannel() <- update:
		default:
			delete(h.Clients, client.GetViewerID())
			client.Close()
			log.Printf("WARN: Dropped stalled preview viewer %s for spec %s", client.GetViewerID(), update.Slug)
		}
	}
}
