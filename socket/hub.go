package socket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/a48zhang/AIditor/pkg/logger"
)

const (
	CreatedType = "CREATED" // A record was inserted
	UpdatedType = "UPDATED" // A record was patched

	MaterialsCollection = "materials"
	ToPublishCollection = "to-publish"

	broadcastBuffer = 256
)

// Collections lists the rooms a client may subscribe to.
var Collections = map[string]bool{
	MaterialsCollection: true,
	ToPublishCollection: true,
}

// Event is the frame pushed to subscribers of a collection.
type Event struct {
	Type       string          `json:"type"`
	Collection string          `json:"collection"`
	ID         string          `json:"id"`
	Payload    json.RawMessage `json:"payload"`
	SentAt     time.Time       `json:"sent_at"`
}

// Hub fans record change events out to the clients subscribed to each collection.
type Hub struct {
	Rooms      map[string]map[*Client]bool
	Broadcast  chan Event
	Register   chan *Client
	Unregister chan *Client
	mu         sync.Mutex
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		Rooms:      make(map[string]map[*Client]bool),
		Broadcast:  make(chan Event, broadcastBuffer),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run owns room membership until ctx is cancelled, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.Register:
			h.mu.Lock()
			if h.Rooms[client.Collection] == nil {
				h.Rooms[client.Collection] = make(map[*Client]bool)
			}
			h.Rooms[client.Collection][client] = true
			h.mu.Unlock()
			logger.Sugar.Infof("Client subscribed to %s", client.Collection)

		case client := <-h.Unregister:
			h.remove(client)

		case ev := <-h.Broadcast:
			payload, err := json.Marshal(ev)
			if err != nil {
				logger.Sugar.Errorf("Error marshalling broadcast event: %v", err)
				continue
			}

			// Copy the recipients so the socket sends happen outside the lock.
			h.mu.Lock()
			clientsToSend := make([]*Client, 0, len(h.Rooms[ev.Collection]))
			for client := range h.Rooms[ev.Collection] {
				clientsToSend = append(clientsToSend, client)
			}
			h.mu.Unlock()

			for _, client := range clientsToSend {
				select {
				case client.Send <- payload:
				default:
					logger.Sugar.Warnf("Client on %s has a full send buffer. Unregistering.", client.Collection)
					h.remove(client)
				}
			}
		}
	}
}

// Publish queues a change event. It never blocks: when the queue is full the
// event is dropped and logged.
func (h *Hub) Publish(collection, eventType, id string, record any) {
	payload, err := json.Marshal(record)
	if err != nil {
		logger.Sugar.Errorf("Error marshalling %s event for %s: %v", eventType, id, err)
		return
	}
	ev := Event{Type: eventType, Collection: collection, ID: id, Payload: payload, SentAt: time.Now()}
	select {
	case h.Broadcast <- ev:
	default:
		logger.Sugar.Warnf("Broadcast queue full, dropping %s event for %s/%s", eventType, collection, id)
	}
}

// ClientCount reports how many clients are subscribed to collection.
func (h *Hub) ClientCount(collection string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.Rooms[collection])
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.Rooms[client.Collection][client]; !ok {
		return
	}
	delete(h.Rooms[client.Collection], client)
	close(client.Send)
	if len(h.Rooms[client.Collection]) == 0 {
		delete(h.Rooms, client.Collection)
	}
}

func (h *Hub) shutdown() {
	close(h.done)
	h.mu.Lock()
	defer h.mu.Unlock()
	for collection, clients := range h.Rooms {
		for client := range clients {
			close(client.Send)
		}
		delete(h.Rooms, collection)
	}
}
