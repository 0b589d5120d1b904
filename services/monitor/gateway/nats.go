package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/praditya/siaga/internal/pkg/constants"
	"github.com/praditya/siaga/internal/pkg/logger"
	"github.com/praditya/siaga/internal/pkg/models"
	natspkg "github.com/praditya/siaga/internal/pkg/nats"
	"github.com/praditya/siaga/services/monitor"
)

// MonitorGW implements the change-feed boundary on top of NATS
type MonitorGW struct {
	client *natspkg.Client
}

// NewMonitorGW creates a new monitor gateway
func NewMonitorGW(client *natspkg.Client) monitor.MonitorGW {
	return &MonitorGW{client: client}
}

// natsSubscription adapts a NATS subscription to the monitor.Subscription
// boundary
type natsSubscription struct {
	sub *nats.Subscription
}

func (s *natsSubscription) Unsubscribe() error {
	return s.sub.Unsubscribe()
}

// SubscribeChanges subscribes to accident change notifications. Payloads that
// fail to decode still count as an invalidation signal: the event carries no
// information the consumer depends on.
func (g *MonitorGW) SubscribeChanges(handler func(models.ChangeEvent)) (monitor.Subscription, error) {
	sub, err := g.client.Subscribe(constants.SubjectAccidentsChanged, func(msg *nats.Msg) {
		var event models.ChangeEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			logger.Debug("Malformed change event, treating as bare invalidation",
				logger.Err(err))
			event = models.ChangeEvent{Table: "accidents"}
		}
		handler(event)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to change feed: %w", err)
	}

	return &natsSubscription{sub: sub}, nil
}

// PublishChange emits a change event for the accidents table
func (g *MonitorGW) PublishChange(ctx context.Context, event models.ChangeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectAccidentsChanged, data); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}

	return nil
}
