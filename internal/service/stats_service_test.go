package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vex-labs/vex-backend/internal/domain"
)

func TestComputeStats_EmptyStore(t *testing.T) {
	f := newFixture(t)

	stats := f.stats.ComputeStats(context.Background())

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Open)
	assert.Equal(t, 0, stats.Resolved)
	assert.NotNil(t, stats.ByType)
	assert.Empty(t, stats.ByType)
	assert.Equal(t, time.Duration(0), stats.AvgResolutionTime)
}

func TestComputeStats_SingleResolvedTicket(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "Alice", "alice@x.com")
	ticket := f.createTicket(t, "Bug A", domain.TicketTypeBug, alice.ID, 2)

	_, err := f.tickets.AssignTicket(ctx, ticket.ID, &alice.ID)
	require.NoError(t, err)
	resolved, err := f.tickets.UpdateTicketStatus(ctx, ticket.ID, domain.TicketStatusResolved)
	require.NoError(t, err)
	require.NotNil(t, resolved.ResolvedAt)

	stats := f.stats.ComputeStats(ctx)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 0, stats.Open)
	assert.Equal(t, 1, stats.Resolved)
	assert.Equal(t, map[domain.TicketType]int{domain.TicketTypeBug: 1}, stats.ByType)
	assert.Equal(t, resolved.ResolvedAt.Sub(resolved.CreatedAt), stats.AvgResolutionTime)
}

func TestComputeStats_BucketsAndMean(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.createUser(t, "Alice", "a@x.com")

	f.createTicket(t, "open bug", domain.TicketTypeBug, user.ID, 1)
	inProgress := f.createTicket(t, "wip feature", domain.TicketTypeFeature, user.ID, 2)
	firstResolved := f.createTicket(t, "fixed bug", domain.TicketTypeBug, user.ID, 3)
	secondResolved := f.createTicket(t, "handled support", domain.TicketTypeSupport, user.ID, 4)
	closed := f.createTicket(t, "closed other", domain.TicketTypeOther, user.ID, 5)

	_, err := f.tickets.UpdateTicketStatus(ctx, inProgress.ID, domain.TicketStatusInProgress)
	require.NoError(t, err)
	a, err := f.tickets.UpdateTicketStatus(ctx, firstResolved.ID, domain.TicketStatusResolved)
	require.NoError(t, err)
	b, err := f.tickets.UpdateTicketStatus(ctx, secondResolved.ID, domain.TicketStatusResolved)
	require.NoError(t, err)
	_, err = f.tickets.UpdateTicketStatus(ctx, closed.ID, domain.TicketStatusClosed)
	require.NoError(t, err)

	stats := f.stats.ComputeStats(ctx)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, stats.Open)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 0, stats.OnHold)
	assert.Equal(t, 2, stats.Resolved)
	assert.Equal(t, 1, stats.Closed)
	assert.Equal(t, map[domain.TicketType]int{
		domain.TicketTypeBug:     2,
		domain.TicketTypeFeature: 1,
		domain.TicketTypeSupport: 1,
		domain.TicketTypeOther:   1,
	}, stats.ByType)

	want := (a.ResolvedAt.Sub(a.CreatedAt) + b.ResolvedAt.Sub(b.CreatedAt)) / 2
	assert.Equal(t, want, stats.AvgResolutionTime)
}

func TestComputeStats_IgnoresStaleResolvedAtOnlyForMissingTickets(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.createUser(t, "Alice", "a@x.com")
	ticket := f.createTicket(t, "Bug A", domain.TicketTypeBug, user.ID, 2)

	_, err := f.tickets.UpdateTicketStatus(ctx, ticket.ID, domain.TicketStatusResolved)
	require.NoError(t, err)
	require.NoError(t, f.tickets.DeleteTicket(ctx, ticket.ID))

	stats := f.stats.ComputeStats(ctx)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, time.Duration(0), stats.AvgResolutionTime)
}

// A reopened ticket keeps its resolution stamp, so it still contributes to
// the mean even while its status bucket is Open.
func TestComputeStats_ReopenedTicketKeepsResolutionLatency(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.createUser(t, "Alice", "a@x.com")
	ticket := f.createTicket(t, "Bug A", domain.TicketTypeBug, user.ID, 2)

	resolved, err := f.tickets.UpdateTicketStatus(ctx, ticket.ID, domain.TicketStatusResolved)
	require.NoError(t, err)
	_, err = f.tickets.UpdateTicketStatus(ctx, ticket.ID, domain.TicketStatusOpen)
	require.NoError(t, err)

	stats := f.stats.ComputeStats(ctx)
	assert.Equal(t, 1, stats.Open)
	assert.Equal(t, 0, stats.Resolved)
	assert.Equal(t, resolved.ResolvedAt.Sub(resolved.CreatedAt), stats.AvgResolutionTime)
}
