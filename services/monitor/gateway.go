package monitor

import (
	"context"

	"github.com/praditya/siaga/internal/pkg/models"
)

// Subscription is a handle on an open change-feed subscription. Unsubscribe
// must release the listener registration exactly once.
type Subscription interface {
	Unsubscribe() error
}

// MonitorGW defines the interface for the change-feed boundary
type MonitorGW interface {
	// SubscribeChanges registers a callback invoked for every change event on
	// the accidents table. The event carries no row data.
	SubscribeChanges(handler func(models.ChangeEvent)) (Subscription, error)

	// PublishChange emits a change event after a local write so every
	// dashboard instance invalidates its snapshot
	PublishChange(ctx context.Context, event models.ChangeEvent) error
}
