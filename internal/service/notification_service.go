package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/vex-labs/vex-backend/internal/config"
	"github.com/vex-labs/vex-backend/internal/events"
	"github.com/vex-labs/vex-backend/internal/persistence"
)

// NotificationService fans ticket events out to observers: the structured
// log and, when configured, a Redis pub/sub channel external notifiers can
// consume.
type NotificationService struct {
	dispatcher events.Dispatcher
	redis      *persistence.Redis
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, redis *persistence.Redis, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		redis:      redis,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to the full event stream.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	for _, eventType := range events.All() {
		n.dispatcher.Subscribe(eventType, n.HandleEvent)
	}
}

// HandleEvent logs the event and forwards it to the Redis channel.
func (n *NotificationService) HandleEvent(ctx context.Context, event events.Event) error {
	n.logger.Info("ticket event",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.Uint64("ticket_id", event.TicketID))
	return n.publishRedis(ctx, event)
}

func (n *NotificationService) publishRedis(ctx context.Context, event events.Event) error {
	if n.redis == nil || n.redis.Client == nil || n.cfg.EventChannel == "" {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := n.redis.Client.Publish(ctx, n.cfg.EventChannel, payload).Err(); err != nil {
		// notification delivery is best effort; the mutation already landed
		n.logger.Warn("redis publish failed", zap.Error(err))
	}
	return nil
}
