package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vex-labs/vex-backend/internal/domain"
	"github.com/vex-labs/vex-backend/internal/events"
	"github.com/vex-labs/vex-backend/internal/store"
)

// stepClock hands out strictly increasing timestamps, one second apart, so
// tests can compare created_at, updated_at and resolved_at exactly.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(time.Second)
	return t
}

// eventRecorder captures published events for assertions.
type eventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *eventRecorder) Publish(ctx context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *eventRecorder) Subscribe(events.EventType, events.EventHandler) {}

func (r *eventRecorder) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]events.EventType, 0, len(r.events))
	for _, event := range r.events {
		types = append(types, event.Type)
	}
	return types
}

type fixture struct {
	store    *store.Store
	clock    *stepClock
	users    *UserService
	tickets  *TicketService
	stats    *StatsService
	recorder *eventRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := &stepClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	st := store.New(clock.Now)
	recorder := &eventRecorder{}
	logger := zap.NewNop()
	return &fixture{
		store: st,
		clock: clock,
		users: NewUserService(st, logger),
		tickets: NewTicketService(TicketDependencies{
			Store:      st,
			Dispatcher: recorder,
			Logger:     logger,
		}),
		stats:    NewStatsService(st),
		recorder: recorder,
	}
}

func (f *fixture) createUser(t *testing.T, name, email string) *domain.User {
	t.Helper()
	user, err := f.users.CreateUser(context.Background(), name, email)
	require.NoError(t, err)
	return user
}

func (f *fixture) createTicket(t *testing.T, title string, ticketType domain.TicketType, createdBy uint64, priority uint8) *domain.Ticket {
	t.Helper()
	ticket, err := f.tickets.CreateTicket(context.Background(), TicketCreateInput{
		Title:       title,
		Description: "description of " + title,
		Type:        ticketType,
		CreatedBy:   createdBy,
		Priority:    priority,
	})
	require.NoError(t, err)
	return ticket
}
