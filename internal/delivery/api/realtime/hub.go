// Package realtime pushes feed change notices to open browser tabs.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"wedump/internal/domain/entity"
	"wedump/internal/usecase"

	"go.uber.org/fx"
)

// sendBuffer is the number of queued messages a slow tab may hold before it is dropped.
const sendBuffer = 32

// MessageTypeFeedChanged asks the tab to re-render the part named by Kind.
const MessageTypeFeedChanged = "feed.changed"

// Message is one push sent to every tab.
type Message struct {
	Type      string               `json:"type"`
	Kind      entity.FeedEventKind `json:"kind"`
	Timestamp time.Time            `json:"timestamp"`
}

// HubParams holds the dependencies of the hub.
type HubParams struct {
	fx.In

	Lc     fx.Lifecycle
	Feed   usecase.FeedUsecase
	Logger *slog.Logger
}

// Hub fans feed events out to connected clients.
type Hub struct {
	logger *slog.Logger

	mu      sync.Mutex
	clients map[*Client]struct{}
	closed  bool

	unsubscribe func()
}

// NewHub creates a hub and subscribes it to the feed. The subscription is
// dropped and all clients are closed when the app stops.
func NewHub(params HubParams) *Hub {
	hub := newHub(params.Logger)
	hub.unsubscribe = params.Feed.Subscribe(hub.onFeedEvent)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			hub.Close()

			return nil
		},
	})

	return hub
}

func newHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*Client]struct{}),
	}
}

func (h *Hub) onFeedEvent(_ context.Context, event entity.FeedEvent) {
	h.Broadcast(Message{
		Type:      MessageTypeFeedChanged,
		Kind:      event.Kind,
		Timestamp: time.Now(),
	})
}

// Broadcast queues msg on every client. Clients whose queue is full are
// disconnected so a stuck tab never blocks the feed.
func (h *Hub) Broadcast(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("Failed to encode realtime message", slog.Any("error", err))

		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			h.logger.Warn("Dropping slow realtime client", slog.String("client_id", client.id))
			h.removeLocked(client)
		}
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// Close disconnects every client and stops accepting new ones.
func (h *Hub) Close() {
	if h.unsubscribe != nil {
		h.unsubscribe()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for client := range h.clients {
		h.removeLocked(client)
	}
}

func (h *Hub) register(client *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.clients[client] = struct{}{}

	return true
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(client)
}

func (h *Hub) removeLocked(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
}
