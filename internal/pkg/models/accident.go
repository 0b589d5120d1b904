package models

import (
	"time"

	"github.com/google/uuid"
)

// Accident statuses. The tracked lifecycle ends at RESPONDING: dispatch is
// the last event this system records for an accident.
const (
	AccidentStatusPending    = "PENDING"
	AccidentStatusResponding = "RESPONDING"
)

// Accident represents a road accident detected by a CCTV camera
type Accident struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CameraID  string    `json:"camera_id" db:"camera_id"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Severity  string    `json:"severity" db:"severity"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	VideoURL  *string   `json:"video_url,omitempty" db:"video_url"`
	Status    string    `json:"status" db:"status"`
}

// HasVideo reports whether a clip was uploaded for this accident
func (a *Accident) HasVideo() bool {
	return a.VideoURL != nil && *a.VideoURL != ""
}
