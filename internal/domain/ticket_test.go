package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTicketTypeValid(t *testing.T) {
	for _, ticketType := range []TicketType{TicketTypeBug, TicketTypeFeature, TicketTypeSupport, TicketTypeMaintenance, TicketTypeOther} {
		assert.True(t, ticketType.Valid(), string(ticketType))
	}
	assert.False(t, TicketType("bug").Valid())
	assert.False(t, TicketType("").Valid())
}

func TestTicketStatusValid(t *testing.T) {
	for _, status := range []TicketStatus{TicketStatusOpen, TicketStatusInProgress, TicketStatusOnHold, TicketStatusResolved, TicketStatusClosed} {
		assert.True(t, status.Valid(), string(status))
	}
	assert.False(t, TicketStatus("Done").Valid())
}

func TestValidPriority(t *testing.T) {
	assert.False(t, ValidPriority(0))
	for p := PriorityHighest; p <= PriorityLowest; p++ {
		assert.True(t, ValidPriority(p))
	}
	assert.False(t, ValidPriority(6))
}

func TestTicketClone_IsDeep(t *testing.T) {
	assignee := uint64(7)
	resolvedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ticket := &Ticket{
		ID:         1,
		AssigneeID: &assignee,
		ResolvedAt: &resolvedAt,
		Messages:   []Message{{ID: 1, Content: "first"}},
	}

	cp := ticket.Clone()
	*ticket.AssigneeID = 99
	*ticket.ResolvedAt = resolvedAt.Add(time.Hour)
	ticket.Messages[0].Content = "mutated"
	ticket.Messages = append(ticket.Messages, Message{ID: 2})

	assert.Equal(t, uint64(7), *cp.AssigneeID)
	assert.Equal(t, resolvedAt, *cp.ResolvedAt)
	assert.Len(t, cp.Messages, 1)
	assert.Equal(t, "first", cp.Messages[0].Content)
}
