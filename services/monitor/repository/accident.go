package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/praditya/siaga/internal/pkg/models"
	"github.com/praditya/siaga/services/monitor"
)

// AccidentRepo provides access to the accidents table
type AccidentRepo struct {
	db  *sqlx.DB
	cfg *models.Config
}

// NewAccidentRepo creates a new accident repository
func NewAccidentRepo(cfg *models.Config, db *sqlx.DB) monitor.AccidentRepo {
	return &AccidentRepo{
		db:  db,
		cfg: cfg,
	}
}

// GetAccidents retrieves all accidents ordered by detection time, newest first
func (r *AccidentRepo) GetAccidents(ctx context.Context) ([]models.Accident, error) {
	query := `
		SELECT id, camera_id, latitude, longitude, severity, timestamp, video_url, status
		FROM accidents
		ORDER BY timestamp DESC
	`

	accidents := []models.Accident{}
	if err := r.db.SelectContext(ctx, &accidents, query); err != nil {
		return nil, fmt.Errorf("failed to get accidents: %w", err)
	}

	return accidents, nil
}

// GetAccidentsByStatus retrieves accidents with the given status, newest first
func (r *AccidentRepo) GetAccidentsByStatus(ctx context.Context, status string) ([]models.Accident, error) {
	query := `
		SELECT id, camera_id, latitude, longitude, severity, timestamp, video_url, status
		FROM accidents
		WHERE status = $1
		ORDER BY timestamp DESC
	`

	accidents := []models.Accident{}
	if err := r.db.SelectContext(ctx, &accidents, query, status); err != nil {
		return nil, fmt.Errorf("failed to get accidents by status: %w", err)
	}

	return accidents, nil
}

// GetUploadedAccidents retrieves pending accidents that already have a clip
func (r *AccidentRepo) GetUploadedAccidents(ctx context.Context) ([]models.Accident, error) {
	query := `
		SELECT id, camera_id, latitude, longitude, severity, timestamp, video_url, status
		FROM accidents
		WHERE status = $1 AND video_url IS NOT NULL
		ORDER BY timestamp DESC
	`

	accidents := []models.Accident{}
	if err := r.db.SelectContext(ctx, &accidents, query, models.AccidentStatusPending); err != nil {
		return nil, fmt.Errorf("failed to get uploaded accidents: %w", err)
	}

	return accidents, nil
}

// GetAccidentByID retrieves a single accident by id
func (r *AccidentRepo) GetAccidentByID(ctx context.Context, id uuid.UUID) (*models.Accident, error) {
	query := `
		SELECT id, camera_id, latitude, longitude, severity, timestamp, video_url, status
		FROM accidents
		WHERE id = $1
	`

	var accident models.Accident
	err := r.db.GetContext(ctx, &accident, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, monitor.ErrAccidentNotFound
		}
		return nil, fmt.Errorf("failed to get accident: %w", err)
	}

	return &accident, nil
}

// UpdateStatus sets the status of exactly one accident. Matching zero rows is
// not an error: the write simply affected nothing.
func (r *AccidentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE accidents
		SET status = $1
		WHERE id = $2
	`

	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("failed to update accident status: %w", err)
	}

	return nil
}
