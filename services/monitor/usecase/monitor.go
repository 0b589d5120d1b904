package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/praditya/siaga/internal/pkg/logger"
	"github.com/praditya/siaga/internal/pkg/models"
	"github.com/praditya/siaga/services/monitor"
)

// StatusFilterUploaded is the pseudo-status accepted by ListAccidents for
// pending accidents that already have a clip
const StatusFilterUploaded = "UPLOADED"

// MonitorUC implements the monitor.MonitorUC interface. It keeps a locally
// materialized snapshot of the accidents table and refreshes it through a
// single coordinator goroutine driven by invalidation signals.
type MonitorUC struct {
	repo monitor.AccidentRepo
	gw   monitor.MonitorGW
	cfg  *models.Config

	mu       sync.RWMutex
	snapshot []models.Accident
	issued   uint64 // sequence of the most recently issued fetch
	applied  uint64 // sequence of the fetch the snapshot came from

	// dirty is a single-slot channel: any number of invalidation signals
	// arriving during a refresh coalesce into one follow-up refresh
	dirty chan struct{}

	sub     monitor.Subscription
	quit    chan struct{}
	done    chan struct{}
	running bool

	onReplace func([]models.Accident)
}

// NewMonitorUC creates a new monitor use case
func NewMonitorUC(repo monitor.AccidentRepo, gw monitor.MonitorGW, cfg *models.Config) *MonitorUC {
	return &MonitorUC{
		repo:  repo,
		gw:    gw,
		cfg:   cfg,
		dirty: make(chan struct{}, 1),
	}
}

// OnSnapshotReplaced registers a listener invoked with the new snapshot after
// every successful refresh. Must be called before Start.
func (uc *MonitorUC) OnSnapshotReplaced(fn func([]models.Accident)) {
	uc.onReplace = fn
}

// Start populates the snapshot, opens the change subscription and launches
// the refresh coordinator
func (uc *MonitorUC) Start(ctx context.Context) error {
	uc.mu.Lock()
	if uc.running {
		uc.mu.Unlock()
		return fmt.Errorf("monitor already started")
	}
	uc.running = true
	uc.quit = make(chan struct{})
	uc.done = make(chan struct{})
	uc.mu.Unlock()

	uc.refresh(ctx)

	sub, err := uc.gw.SubscribeChanges(func(models.ChangeEvent) {
		uc.Invalidate()
	})
	if err != nil {
		uc.mu.Lock()
		uc.running = false
		uc.mu.Unlock()
		return fmt.Errorf("failed to open change subscription: %w", err)
	}
	uc.sub = sub

	go uc.coordinate()

	logger.Info("Accident monitor started",
		logger.Int("accidents", len(uc.Snapshot())))
	return nil
}

// Stop closes the change subscription and stops the coordinator. Safe to call
// once per Start.
func (uc *MonitorUC) Stop() {
	uc.mu.Lock()
	if !uc.running {
		uc.mu.Unlock()
		return
	}
	uc.running = false
	uc.mu.Unlock()

	if uc.sub != nil {
		if err := uc.sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to close change subscription", logger.Err(err))
		}
		uc.sub = nil
	}

	close(uc.quit)
	<-uc.done

	logger.Info("Accident monitor stopped")
}

// coordinate consumes invalidation signals and performs at most one
// in-flight refresh at a time
func (uc *MonitorUC) coordinate() {
	defer close(uc.done)

	for {
		select {
		case <-uc.quit:
			return
		case <-uc.dirty:
			uc.refresh(context.Background())
		}
	}
}

// Invalidate marks the snapshot stale without blocking the caller
func (uc *MonitorUC) Invalidate() {
	select {
	case uc.dirty <- struct{}{}:
	default:
		// A refresh is already scheduled; one fetch covers all pending signals
	}
}

// refresh fetches the full accident set and replaces the snapshot. Failures
// leave the previous snapshot untouched and are visible only in the log. The
// sequence pair ensures a fetch issued earlier can never overwrite the result
// of a later one.
func (uc *MonitorUC) refresh(ctx context.Context) {
	uc.mu.Lock()
	uc.issued++
	seq := uc.issued
	uc.mu.Unlock()

	accidents, err := uc.repo.GetAccidents(ctx)
	if err != nil {
		logger.Warn("Accident snapshot refresh failed",
			logger.Uint64("seq", seq),
			logger.Err(err))
		return
	}

	for i := range accidents {
		uc.rewriteVideoURL(&accidents[i])
	}

	uc.mu.Lock()
	if seq < uc.applied {
		uc.mu.Unlock()
		logger.Debug("Discarding superseded snapshot fetch", logger.Uint64("seq", seq))
		return
	}
	uc.applied = seq
	uc.snapshot = accidents
	uc.mu.Unlock()

	if uc.onReplace != nil {
		uc.onReplace(accidents)
	}
}

// Snapshot returns a copy of the current accident snapshot, newest first
func (uc *MonitorUC) Snapshot() []models.Accident {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]models.Accident, len(uc.snapshot))
	copy(out, uc.snapshot)
	return out
}

// AcceptEmergency marks an accident as being responded to. The write is
// issued regardless of current status, and the snapshot is invalidated
// whether or not the write succeeded.
func (uc *MonitorUC) AcceptEmergency(ctx context.Context, id uuid.UUID) {
	if err := uc.repo.UpdateStatus(ctx, id, models.AccidentStatusResponding); err != nil {
		logger.Warn("Accept emergency write failed",
			logger.String("accident_id", id.String()),
			logger.Err(err))
	} else if err := uc.gw.PublishChange(ctx, models.ChangeEvent{
		Table:      "accidents",
		Op:         "update",
		OccurredAt: time.Now(),
	}); err != nil {
		logger.Debug("Change publication failed", logger.Err(err))
	}

	uc.Invalidate()
}

// ListAccidents returns accidents for the dashboard list. An empty status
// serves the in-memory snapshot; a status filter queries the repository.
func (uc *MonitorUC) ListAccidents(ctx context.Context, status string) ([]models.Accident, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status == "" {
		return uc.Snapshot(), nil
	}

	var (
		accidents []models.Accident
		err       error
	)
	if status == StatusFilterUploaded {
		accidents, err = uc.repo.GetUploadedAccidents(ctx)
	} else {
		accidents, err = uc.repo.GetAccidentsByStatus(ctx, status)
	}
	if err != nil {
		return nil, err
	}

	for i := range accidents {
		uc.rewriteVideoURL(&accidents[i])
	}
	return accidents, nil
}

// GetAccident returns a single accident by id
func (uc *MonitorUC) GetAccident(ctx context.Context, id uuid.UUID) (*models.Accident, error) {
	accident, err := uc.repo.GetAccidentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.rewriteVideoURL(accident)
	return accident, nil
}

// VideoURL returns the playback URL for an accident's clip
func (uc *MonitorUC) VideoURL(ctx context.Context, id uuid.UUID) (string, error) {
	accident, err := uc.repo.GetAccidentByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !accident.HasVideo() {
		return "", monitor.ErrAccidentNotFound
	}

	uc.rewriteVideoURL(accident)
	return *accident.VideoURL, nil
}

// rewriteVideoURL replaces a bucket URL with the same-origin proxy path so
// the browser never talks to object storage directly
func (uc *MonitorUC) rewriteVideoURL(a *models.Accident) {
	if !a.HasVideo() {
		return
	}

	base := uc.cfg.Storage.PublicBaseURL
	if base == "" || !strings.HasPrefix(*a.VideoURL, base) {
		return
	}

	clip := strings.TrimPrefix(*a.VideoURL, base)
	clip = strings.TrimPrefix(clip, "/")
	proxied := strings.TrimSuffix(uc.cfg.Storage.ProxyPath, "/") + "/" + clip
	a.VideoURL = &proxied
}
