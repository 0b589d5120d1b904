package fleet

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/praditya/siaga/internal/pkg/models"
)

// ErrAmbulanceNotFound is returned when no ambulance exists for an id
var ErrAmbulanceNotFound = errors.New("ambulance not found")

// AmbulanceRepo defines the interface for ambulance data access operations
type AmbulanceRepo interface {
	// Row operations against Postgres
	GetAmbulances(ctx context.Context) ([]models.Ambulance, error)
	GetAmbulancesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Ambulance, error)
	UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error

	// Live position operations against Redis
	UpdatePosition(ctx context.Context, id uuid.UUID, latitude, longitude float64) error
	NearbyAmbulanceIDs(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.AmbulancePosition, error)
}
