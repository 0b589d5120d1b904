package monitor

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/praditya/siaga/internal/pkg/models"
)

// ErrAccidentNotFound is returned when no accident exists for an id
var ErrAccidentNotFound = errors.New("accident not found")

// AccidentRepo defines the interface for accident data access operations
type AccidentRepo interface {
	// GetAccidents returns the complete accident set, newest first
	GetAccidents(ctx context.Context) ([]models.Accident, error)

	// GetAccidentsByStatus returns accidents with the given status, newest first
	GetAccidentsByStatus(ctx context.Context, status string) ([]models.Accident, error)

	// GetUploadedAccidents returns pending accidents that have a video clip,
	// newest first
	GetUploadedAccidents(ctx context.Context) ([]models.Accident, error)

	// GetAccidentByID returns a single accident or an error when absent
	GetAccidentByID(ctx context.Context, id uuid.UUID) (*models.Accident, error)

	// UpdateStatus is a point write on exactly one row by id. A write that
	// matches zero rows is not an error.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
