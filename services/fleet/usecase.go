package fleet

import (
	"context"

	"github.com/google/uuid"
	"github.com/praditya/siaga/internal/pkg/models"
)

// FleetUC defines the interface for ambulance fleet business logic
type FleetUC interface {
	ListAmbulances(ctx context.Context) ([]models.Ambulance, error)
	UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error
	UpdateLocation(ctx context.Context, id uuid.UUID, latitude, longitude float64) error

	// NearestAvailable returns available ambulances within radiusKm of a
	// point, closest first
	NearestAvailable(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.Ambulance, error)
}
