package events

import (
	"time"

	"github.com/vex-labs/vex-backend/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketUpdated       EventType = "ticket_updated"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketAssigned      EventType = "ticket_assigned"
	EventTicketMessageAdded  EventType = "ticket_message_added"
	EventTicketDeleted       EventType = "ticket_deleted"
)

// All lists every event type, for subscribers that want the full stream.
func All() []EventType {
	return []EventType{
		EventTicketCreated,
		EventTicketUpdated,
		EventTicketStatusChanged,
		EventTicketAssigned,
		EventTicketMessageAdded,
		EventTicketDeleted,
	}
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  uint64      `json:"ticket_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	CreatedBy uint64            `json:"created_by"`
	Type      domain.TicketType `json:"ticket_type"`
	Priority  uint8             `json:"priority"`
	Title     string            `json:"title"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// TicketAssignedPayload payload. A nil AssigneeID means the assignment was
// cleared.
type TicketAssignedPayload struct {
	AssigneeID *uint64 `json:"assignee_id,omitempty"`
}

// TicketMessageAddedPayload payload.
type TicketMessageAddedPayload struct {
	MessageID   uint64 `json:"message_id"`
	UserID      uint64 `json:"user_id"`
	BodyPreview string `json:"body_preview"`
}
