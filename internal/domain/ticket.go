package domain

import "time"

// TicketType categorizes the nature of a request.
type TicketType string

const (
	TicketTypeBug         TicketType = "Bug"
	TicketTypeFeature     TicketType = "Feature"
	TicketTypeSupport     TicketType = "Support"
	TicketTypeMaintenance TicketType = "Maintenance"
	TicketTypeOther       TicketType = "Other"
)

// Valid reports whether t is a known ticket type.
func (t TicketType) Valid() bool {
	switch t {
	case TicketTypeBug, TicketTypeFeature, TicketTypeSupport, TicketTypeMaintenance, TicketTypeOther:
		return true
	}
	return false
}

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "InProgress"
	TicketStatusOnHold     TicketStatus = "OnHold"
	TicketStatusResolved   TicketStatus = "Resolved"
	TicketStatusClosed     TicketStatus = "Closed"
)

// Valid reports whether s is a known ticket status.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusOnHold, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// Priority bounds. 1 is the most urgent.
const (
	PriorityHighest uint8 = 1
	PriorityLowest  uint8 = 5
)

// ValidPriority reports whether p falls inside the accepted range.
func ValidPriority(p uint8) bool {
	return p >= PriorityHighest && p <= PriorityLowest
}

// Message is one entry in a ticket's conversation thread. Message IDs are a
// per-ticket sequence starting at 1; they are not globally unique.
type Message struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Ticket is the aggregate for support requests.
type Ticket struct {
	ID          uint64       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        TicketType   `json:"ticket_type"`
	Status      TicketStatus `json:"status"`
	AssigneeID  *uint64      `json:"assignee_id,omitempty"`
	CreatedBy   uint64       `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	ResolvedAt  *time.Time   `json:"resolved_at,omitempty"`
	Priority    uint8        `json:"priority"`
	Messages    []Message    `json:"messages"`
}

// Clone returns a deep copy that stays stable after the store mutates the
// original record.
func (t *Ticket) Clone() *Ticket {
	cp := *t
	if t.AssigneeID != nil {
		id := *t.AssigneeID
		cp.AssigneeID = &id
	}
	if t.ResolvedAt != nil {
		at := *t.ResolvedAt
		cp.ResolvedAt = &at
	}
	cp.Messages = append([]Message(nil), t.Messages...)
	return &cp
}
