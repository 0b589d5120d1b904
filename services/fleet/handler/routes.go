package handler

import (
	"github.com/labstack/echo/v4"
	httpHandler "github.com/praditya/siaga/services/fleet/handler/http"
)

// Handler coordinates the protocol handlers for the fleet service
type Handler struct {
	ambulanceHandler *httpHandler.AmbulanceHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(ambulanceHandler *httpHandler.AmbulanceHandler) *Handler {
	return &Handler{
		ambulanceHandler: ambulanceHandler,
	}
}

// RegisterRoutes registers the fleet service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	ambulances := e.Group("/ambulances")
	ambulances.GET("", h.ambulanceHandler.ListAmbulances)
	ambulances.GET("/nearest", h.ambulanceHandler.NearestAvailable)
	ambulances.PUT("/:id/availability", h.ambulanceHandler.UpdateAvailability)
	ambulances.PUT("/:id/location", h.ambulanceHandler.UpdateLocation)
}
