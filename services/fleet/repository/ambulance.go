package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/praditya/siaga/internal/pkg/constants"
	"github.com/praditya/siaga/internal/pkg/database"
	"github.com/praditya/siaga/internal/pkg/models"
	"github.com/praditya/siaga/internal/utils"
	"github.com/praditya/siaga/services/fleet"
)

// PositionTTL is how long a live position sample stays valid without a new
// update from the unit
const PositionTTL = 24 * time.Hour

// AmbulanceRepo provides access to ambulance rows and live positions
type AmbulanceRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewAmbulanceRepo creates a new ambulance repository
func NewAmbulanceRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) fleet.AmbulanceRepo {
	return &AmbulanceRepo{
		db:          db,
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// GetAmbulances retrieves all ambulance rows
func (r *AmbulanceRepo) GetAmbulances(ctx context.Context) ([]models.Ambulance, error) {
	query := `
		SELECT id, driver_name, latitude, longitude, available
		FROM ambulances
		ORDER BY driver_name
	`

	ambulances := []models.Ambulance{}
	if err := r.db.SelectContext(ctx, &ambulances, query); err != nil {
		return nil, fmt.Errorf("failed to get ambulances: %w", err)
	}

	return ambulances, nil
}

// GetAmbulancesByIDs retrieves ambulance rows for the given ids
func (r *AmbulanceRepo) GetAmbulancesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Ambulance, error) {
	if len(ids) == 0 {
		return []models.Ambulance{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, driver_name, latitude, longitude, available
		FROM ambulances
		WHERE id IN (?)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build ambulance query: %w", err)
	}

	ambulances := []models.Ambulance{}
	if err := r.db.SelectContext(ctx, &ambulances, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get ambulances by ids: %w", err)
	}

	return ambulances, nil
}

// UpdateAvailability sets the availability flag on one ambulance
func (r *AmbulanceRepo) UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	query := `
		UPDATE ambulances
		SET available = $1
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, available, id)
	if err != nil {
		return fmt.Errorf("failed to update ambulance availability: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fleet.ErrAmbulanceNotFound
	}

	return nil
}

// UpdatePosition writes a live position sample to the fleet geo set and the
// per-unit hash, and keeps the row coordinates in step
func (r *AmbulanceRepo) UpdatePosition(ctx context.Context, id uuid.UUID, latitude, longitude float64) error {
	if err := r.redisClient.GeoAdd(ctx, constants.KeyFleetGeo, longitude, latitude, id.String()); err != nil {
		return fmt.Errorf("failed to store ambulance position: %w", err)
	}

	cell := utils.EncodePosition(latitude, longitude, r.cfg.Fleet.GeohashPrecision)
	positionKey := fmt.Sprintf(constants.KeyAmbulancePosition, id.String())
	positionData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(longitude, 'f', -1, 64),
		constants.FieldGeohash:   cell,
		constants.FieldTimestamp: strconv.FormatInt(time.Now().Unix(), 10),
	}

	if err := r.redisClient.HMSet(ctx, positionKey, positionData); err != nil {
		return fmt.Errorf("failed to store ambulance position sample: %w", err)
	}
	if err := r.redisClient.Expire(ctx, positionKey, PositionTTL); err != nil {
		return fmt.Errorf("failed to set position TTL: %w", err)
	}

	query := `
		UPDATE ambulances
		SET latitude = $1, longitude = $2
		WHERE id = $3
	`
	if _, err := r.db.ExecContext(ctx, query, latitude, longitude, id); err != nil {
		return fmt.Errorf("failed to update ambulance coordinates: %w", err)
	}

	return nil
}

// NearbyAmbulanceIDs finds live positions within radiusKm of a point,
// closest first
func (r *AmbulanceRepo) NearbyAmbulanceIDs(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.AmbulancePosition, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyFleetGeo, longitude, latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query fleet geo set: %w", err)
	}

	positions := make([]models.AmbulancePosition, 0, len(locations))
	for _, loc := range locations {
		id, err := uuid.Parse(loc.Name)
		if err != nil {
			continue
		}
		positions = append(positions, models.AmbulancePosition{
			AmbulanceID: id,
			Latitude:    loc.Latitude,
			Longitude:   loc.Longitude,
			Geohash:     utils.EncodePosition(loc.Latitude, loc.Longitude, r.cfg.Fleet.GeohashPrecision),
			DistanceKm:  loc.Dist,
		})
	}

	return positions, nil
}
