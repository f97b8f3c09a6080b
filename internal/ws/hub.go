package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Event types pushed to dashboard clients.
const (
	CarStatusUpdateType    = "CAR_STATUS_UPDATE"
	RentalStatusUpdateType = "RENTAL_STATUS_UPDATE"
)

// Message is the wire format for dashboard events.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans status events out to all connected dashboard clients. A nil
// Hub drops broadcasts, so wiring it in stays optional.
type Hub struct {
	mu        sync.Mutex
	clients   map[*websocket.Conn]bool
	broadcast chan Message
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan Message, 64),
	}
}

// Run pumps broadcast messages to the connected clients. Dead
// connections are dropped on write failure.
func (h *Hub) Run() {
	for msg := range h.broadcast {
		data, err := json.Marshal(msg)
		if err != nil {
			log.Printf("[WS] marshal failed: %v", err)
			continue
		}

		h.mu.Lock()
		for conn := range h.clients {
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				conn.Close()
				delete(h.clients, conn)
			}
		}
		h.mu.Unlock()
	}
}

// ServeHTTP upgrades the connection and keeps it registered until the
// client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	// Reads are discarded; the socket exists for pushes only. The read
	// loop detects the close.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.clients, conn)
				h.mu.Unlock()
				conn.Close()
				return
			}
		}
	}()
}

// Broadcast queues an event for delivery. Never blocks: if the queue is
// full the event is dropped, the dashboard only shows live state.
func (h *Hub) Broadcast(msgType string, payload interface{}) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- Message{Type: msgType, Payload: payload}:
	default:
		log.Printf("[WS] broadcast queue full, dropping %s", msgType)
	}
}

// CarStatusChanged pushes a car status event.
func (h *Hub) CarStatusChanged(carID int, status string) {
	h.Broadcast(CarStatusUpdateType, map[string]interface{}{
		"car_id": carID,
		"status": status,
	})
}

// RentalStatusChanged pushes a rental lifecycle event.
func (h *Hub) RentalStatusChanged(rentalID, carID int, status string) {
	h.Broadcast(RentalStatusUpdateType, map[string]interface{}{
		"rental_id": rentalID,
		"car_id":    carID,
		"status":    status,
	})
}
