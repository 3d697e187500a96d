package notify

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lwp3877/meetpin-server/internal/models"
)

// Event то, что уходит подписчику по websocket
type Event struct {
	Type      string     `json:"type"`
	Body      string     `json:"body"`
	RoomID    *uuid.UUID `json:"room_id,omitempty"`
	MatchID   *uuid.UUID `json:"match_id,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// Hub реестр websocket-подписчиков на уведомления. Доставка
// fire-and-forget: нет соединения или очередь клиента забита —
// событие молча теряется, строка в базе остаётся источником правды.
type Hub struct {
	clients map[uuid.UUID]*Client

	// соединения по UserID, у пользователя их может быть несколько
	userClients map[uuid.UUID]map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:     make(map[uuid.UUID]*Client),
		userClients: make(map[uuid.UUID]map[uuid.UUID]*Client),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Run запускает hub
func (h *Hub) Run() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)
		}
	}
}

// Stop останавливает hub
func (h *Hub) Stop() {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.clients {
		close(client.Send)
		client.Conn.Close()
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client

	if _, ok := h.userClients[client.UserID]; !ok {
		h.userClients[client.UserID] = make(map[uuid.UUID]*Client)
	}
	h.userClients[client.UserID][client.ID] = client

	log.Printf("Notify client registered: %s (User: %s)", client.ID, client.UserID)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; ok {
		if userClients, ok := h.userClients[client.UserID]; ok {
			delete(userClients, client.ID)
			if len(userClients) == 0 {
				delete(h.userClients, client.UserID)
			}
		}

		delete(h.clients, client.ID)
		close(client.Send)

		log.Printf("Notify client unregistered: %s (User: %s)", client.ID, client.UserID)
	}
}

// Push отправляет событие всем соединениям пользователя. Не блокирует:
// медленный потребитель пропускает событие.
func (h *Hub) Push(userID uuid.UUID, notification *models.Notification) {
	event := Event{
		Type:      notification.Type,
		Body:      notification.Body,
		RoomID:    notification.RoomID,
		MatchID:   notification.MatchID,
		Timestamp: notification.CreatedAt,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Notify marshal error: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.userClients[userID] {
		select {
		case client.Send <- data:
		default:
			// очередь клиента переполнена
		}
	}
}
