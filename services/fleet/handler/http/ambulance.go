package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/praditya/siaga/internal/pkg/logger"
	"github.com/praditya/siaga/internal/utils"
	"github.com/praditya/siaga/services/fleet"
)

// AmbulanceHandler handles HTTP requests for fleet operations
type AmbulanceHandler struct {
	fleetUC fleet.FleetUC
}

// NewAmbulanceHandler creates a new ambulance handler
func NewAmbulanceHandler(fleetUC fleet.FleetUC) *AmbulanceHandler {
	return &AmbulanceHandler{
		fleetUC: fleetUC,
	}
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

type locationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ListAmbulances handles ambulance list requests
func (h *AmbulanceHandler) ListAmbulances(c echo.Context) error {
	ambulances, err := h.fleetUC.ListAmbulances(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list ambulances", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve ambulances")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ambulances retrieved successfully", ambulances)
}

// UpdateAvailability handles availability flag updates
func (h *AmbulanceHandler) UpdateAvailability(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ambulance ID")
	}

	var req availabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.fleetUC.UpdateAvailability(c.Request().Context(), id, req.Available); err != nil {
		if errors.Is(err, fleet.ErrAmbulanceNotFound) {
			return utils.NotFoundResponse(c, "Ambulance not found")
		}
		logger.Error("Failed to update ambulance availability",
			logger.String("ambulance_id", id.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update availability")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated successfully", nil)
}

// UpdateLocation handles live position updates from units
func (h *AmbulanceHandler) UpdateLocation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ambulance ID")
	}

	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.fleetUC.UpdateLocation(c.Request().Context(), id, req.Latitude, req.Longitude); err != nil {
		logger.Error("Failed to update ambulance location",
			logger.String("ambulance_id", id.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update location")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", nil)
}

// NearestAvailable handles nearest-unit lookups for a coordinate
func (h *AmbulanceHandler) NearestAvailable(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}

	radiusKm := 0.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid radius")
		}
	}

	ambulances, err := h.fleetUC.NearestAvailable(c.Request().Context(), latitude, longitude, radiusKm)
	if err != nil {
		logger.Error("Failed to find nearest ambulances", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to find nearest ambulances")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearest ambulances retrieved successfully", ambulances)
}
