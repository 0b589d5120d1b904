package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/praditya/siaga/internal/pkg/logger"
	"github.com/praditya/siaga/internal/utils"
	"github.com/praditya/siaga/services/monitor"
)

// AccidentHandler handles HTTP requests for accident operations
type AccidentHandler struct {
	monitorUC monitor.MonitorUC
}

// NewAccidentHandler creates a new accident handler
func NewAccidentHandler(monitorUC monitor.MonitorUC) *AccidentHandler {
	return &AccidentHandler{
		monitorUC: monitorUC,
	}
}

// ListAccidents handles accident list requests, optionally filtered by status
func (h *AccidentHandler) ListAccidents(c echo.Context) error {
	status := c.QueryParam("status")

	accidents, err := h.monitorUC.ListAccidents(c.Request().Context(), status)
	if err != nil {
		logger.Error("Failed to list accidents",
			logger.String("status", status),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve accidents")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Accidents retrieved successfully", accidents)
}

// GetAccident handles single accident detail requests
func (h *AccidentHandler) GetAccident(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid accident ID")
	}

	accident, err := h.monitorUC.GetAccident(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, monitor.ErrAccidentNotFound) {
			return utils.NotFoundResponse(c, "Accident not found")
		}
		logger.Error("Failed to get accident",
			logger.String("accident_id", id.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve accident")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Accident retrieved successfully", accident)
}

// AcceptEmergency handles an operator accepting an accident. Best effort by
// contract: the response is 200 whether or not the row existed.
func (h *AccidentHandler) AcceptEmergency(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid accident ID")
	}

	h.monitorUC.AcceptEmergency(c.Request().Context(), id)

	return utils.SuccessResponse(c, http.StatusOK, "Emergency accepted", nil)
}

// GetVideoURL handles requests for an accident's clip playback URL
func (h *AccidentHandler) GetVideoURL(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid accident ID")
	}

	videoURL, err := h.monitorUC.VideoURL(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, monitor.ErrAccidentNotFound) {
			return utils.NotFoundResponse(c, "Video not found")
		}
		logger.Error("Failed to get video URL",
			logger.String("accident_id", id.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve video URL")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Video URL retrieved successfully", map[string]string{
		"video_url": videoURL,
	})
}
