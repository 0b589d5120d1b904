package websocket

import (
	"time"

	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/praditya/siaga/internal/pkg/models"
	wspkg "github.com/praditya/siaga/internal/pkg/websocket"
)

// DashboardHandler pushes snapshot-change events to connected dashboard
// browsers
type DashboardHandler struct {
	manager *wspkg.Manager
}

// NewDashboardHandler creates a new dashboard WebSocket handler
func NewDashboardHandler(manager *wspkg.Manager) *DashboardHandler {
	return &DashboardHandler{manager: manager}
}

// HandleConnection upgrades the request and keeps the connection open until
// the browser disconnects. The server never expects inbound frames; the read
// loop exists to detect the close.
func (h *DashboardHandler) HandleConnection(c echo.Context) error {
	return h.manager.HandleConnection(c, func(conn *gorilla.Conn) error {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return nil
			}
		}
	})
}

// NotifySnapshotReplaced broadcasts a change frame to every connected
// dashboard. Wired as the monitor's snapshot listener.
func (h *DashboardHandler) NotifySnapshotReplaced(accidents []models.Accident) {
	h.manager.Broadcast(models.DashboardFrame{
		Event:     "accidents.changed",
		Count:     len(accidents),
		Timestamp: time.Now(),
	})
}
