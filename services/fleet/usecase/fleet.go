package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/praditya/siaga/internal/pkg/models"
	"github.com/praditya/siaga/services/fleet"
)

// FleetUC implements the fleet.FleetUC interface
type FleetUC struct {
	repo fleet.AmbulanceRepo
	cfg  *models.Config
}

// NewFleetUC creates a new fleet use case
func NewFleetUC(repo fleet.AmbulanceRepo, cfg *models.Config) fleet.FleetUC {
	return &FleetUC{
		repo: repo,
		cfg:  cfg,
	}
}

// ListAmbulances returns all ambulance rows
func (uc *FleetUC) ListAmbulances(ctx context.Context) ([]models.Ambulance, error) {
	return uc.repo.GetAmbulances(ctx)
}

// UpdateAvailability sets the availability flag for one ambulance
func (uc *FleetUC) UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	return uc.repo.UpdateAvailability(ctx, id, available)
}

// UpdateLocation records a live position sample for one ambulance
func (uc *FleetUC) UpdateLocation(ctx context.Context, id uuid.UUID, latitude, longitude float64) error {
	if err := validateCoordinates(latitude, longitude); err != nil {
		return err
	}
	return uc.repo.UpdatePosition(ctx, id, latitude, longitude)
}

// NearestAvailable returns available ambulances within radiusKm of a point,
// closest first. A non-positive radius falls back to the configured default.
func (uc *FleetUC) NearestAvailable(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.Ambulance, error) {
	if err := validateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		radiusKm = uc.cfg.Fleet.SearchRadiusKm
	}

	positions, err := uc.repo.NearbyAmbulanceIDs(ctx, latitude, longitude, radiusKm)
	if err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return []models.Ambulance{}, nil
	}

	ids := make([]uuid.UUID, 0, len(positions))
	for _, p := range positions {
		ids = append(ids, p.AmbulanceID)
	}

	ambulances, err := uc.repo.GetAmbulancesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.Ambulance, len(ambulances))
	for _, a := range ambulances {
		byID[a.ID] = a
	}

	// Keep the geo result order so the list stays closest-first
	nearest := make([]models.Ambulance, 0, len(positions))
	for _, p := range positions {
		a, ok := byID[p.AmbulanceID]
		if !ok || !a.Available {
			continue
		}
		nearest = append(nearest, a)
	}

	return nearest, nil
}

func validateCoordinates(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return errors.New("latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}
