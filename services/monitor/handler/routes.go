package handler

import (
	"github.com/labstack/echo/v4"
	httpHandler "github.com/praditya/siaga/services/monitor/handler/http"
	wsHandler "github.com/praditya/siaga/services/monitor/handler/websocket"
)

// Handler coordinates all protocol handlers for the monitor service
type Handler struct {
	accidentHandler  *httpHandler.AccidentHandler
	videoHandler     *httpHandler.VideoProxyHandler
	dashboardHandler *wsHandler.DashboardHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(
	accidentHandler *httpHandler.AccidentHandler,
	videoHandler *httpHandler.VideoProxyHandler,
	dashboardHandler *wsHandler.DashboardHandler,
) *Handler {
	return &Handler{
		accidentHandler:  accidentHandler,
		videoHandler:     videoHandler,
		dashboardHandler: dashboardHandler,
	}
}

// RegisterRoutes registers the monitor service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	accidents := e.Group("/accidents")
	accidents.GET("", h.accidentHandler.ListAccidents)
	accidents.GET("/:id", h.accidentHandler.GetAccident)
	accidents.POST("/:id/accept", h.accidentHandler.AcceptEmergency)
	accidents.GET("/:id/video", h.accidentHandler.GetVideoURL)

	e.GET("/video-proxy/*", h.videoHandler.Proxy)

	e.GET("/ws/dashboard", h.dashboardHandler.HandleConnection)
}
