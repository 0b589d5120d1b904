package websocket

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/praditya/siaga/internal/pkg/logger"
)

// Manager manages dashboard WebSocket connections and fan-out
type Manager struct {
	sync.RWMutex
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request and keeps the connection registered
// until handleClient returns
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*websocket.Conn) error) error {
	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	m.register(ws)
	defer m.unregister(ws)

	return handleClient(ws)
}

func (m *Manager) register(conn *websocket.Conn) {
	m.Lock()
	defer m.Unlock()
	m.clients[conn] = struct{}{}
}

func (m *Manager) unregister(conn *websocket.Conn) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, conn)
}

// ClientCount returns the number of connected dashboards
func (m *Manager) ClientCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// Broadcast sends a JSON message to every connected dashboard. Write errors
// drop the offending client, the rest keep receiving.
func (m *Manager) Broadcast(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Warn("Failed to marshal broadcast message", logger.Err(err))
		return
	}

	m.Lock()
	defer m.Unlock()

	for conn := range m.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			logger.Debug("Dropping dashboard client after write failure", logger.Err(err))
			conn.Close()
			delete(m.clients, conn)
		}
	}
}
