package monitor

import (
	"context"

	"github.com/google/uuid"
	"github.com/praditya/siaga/internal/pkg/models"
)

// MonitorUC defines the interface for the accident monitoring business logic
type MonitorUC interface {
	// Lifecycle. Start performs one refresh and opens the single change
	// subscription; Stop closes it. A restart must not leak a previous
	// subscription.
	Start(ctx context.Context) error
	Stop()

	// Snapshot returns the current accident snapshot, newest first. The
	// returned slice is a copy and safe to hold across refreshes.
	Snapshot() []models.Accident

	// Invalidate marks the snapshot stale. The coordinator refetches soon
	// after; signals arriving during a refresh coalesce into one follow-up.
	Invalidate()

	// AcceptEmergency marks an accident as being responded to and
	// invalidates the snapshot. Best effort: failures are logged, never
	// returned.
	AcceptEmergency(ctx context.Context, id uuid.UUID)

	// Query operations backed by the repository
	ListAccidents(ctx context.Context, status string) ([]models.Accident, error)
	GetAccident(ctx context.Context, id uuid.UUID) (*models.Accident, error)
	VideoURL(ctx context.Context, id uuid.UUID) (string, error)
}
