package inspect

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/routemap-dev/routemap/internal/report"
)

// UpdateHub manages WebSocket connections for live inventory updates.
// Whenever the routes tree changes and a rescan completes, the fresh
// inventory is broadcast as JSON to every connected client.
type UpdateHub struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

// NewUpdateHub creates an update hub with no connected clients.
func NewUpdateHub() *UpdateHub {
	return &UpdateHub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // local inspection tool, allow all origins
			},
		},
	}
}

// HandleWebSocket handles WebSocket upgrade and holds the connection open
// until the client disconnects.
func (h *UpdateHub) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// Broadcast sends the inventory to all connected clients. Clients whose
// connection fails are dropped.
func (h *UpdateHub) Broadcast(inv *report.Inventory) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(inv); err != nil {
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *UpdateHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
