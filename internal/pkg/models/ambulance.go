package models

import (
	"time"

	"github.com/google/uuid"
)

// Ambulance represents a dispatchable ambulance unit
type Ambulance struct {
	ID         uuid.UUID `json:"id" db:"id"`
	DriverName string    `json:"driver_name" db:"driver_name"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Available  bool      `json:"available" db:"available"`
}

// AmbulancePosition is a live position sample for an ambulance, kept in Redis
// alongside the Postgres row
type AmbulancePosition struct {
	AmbulanceID uuid.UUID `json:"ambulance_id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Geohash     string    `json:"geohash"`
	DistanceKm  float64   `json:"distance_km,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}
