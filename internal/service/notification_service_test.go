package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vex-labs/vex-backend/internal/config"
	"github.com/vex-labs/vex-backend/internal/events"
	"github.com/vex-labs/vex-backend/internal/persistence"
)

func sampleEvent() events.Event {
	return events.Event{
		ID:        "b1f2b6f0-6f65-4b0a-b0d5-4a6a0f2f9a11",
		Type:      events.EventTicketCreated,
		TicketID:  1,
		Timestamp: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Payload: events.TicketCreatedPayload{
			CreatedBy: 1,
			Type:      "Bug",
			Priority:  2,
			Title:     "Bug A",
		},
	}
}

func TestNotificationService_PublishesToRedisChannel(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewNotificationService(nil, &persistence.Redis{Client: client}, zap.NewNop(),
		config.NotificationConfig{EventChannel: "vex:ticket-events"})

	event := sampleEvent()
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	mock.ExpectPublish("vex:ticket-events", payload).SetVal(1)

	require.NoError(t, svc.HandleEvent(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationService_RedisFailureIsBestEffort(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewNotificationService(nil, &persistence.Redis{Client: client}, zap.NewNop(),
		config.NotificationConfig{EventChannel: "vex:ticket-events"})

	event := sampleEvent()
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	mock.ExpectPublish("vex:ticket-events", payload).SetErr(errors.New("connection refused"))

	// delivery failures must not bubble up to the mutation path
	require.NoError(t, svc.HandleEvent(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationService_SkipsRedisWhenUnconfigured(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewNotificationService(nil, &persistence.Redis{Client: client}, zap.NewNop(),
		config.NotificationConfig{})

	require.NoError(t, svc.HandleEvent(context.Background(), sampleEvent()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationService_RegisterHandlersSubscribesAllTypes(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewNotificationService(dispatcher, nil, zap.NewNop(), config.NotificationConfig{})
	svc.RegisterHandlers()

	for _, eventType := range events.All() {
		err := dispatcher.Publish(context.Background(), events.Event{Type: eventType})
		assert.NoError(t, err, string(eventType))
	}
}
