package dto

import (
	"time"

	"github.com/vex-labs/vex-backend/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Type        domain.TicketType `json:"ticket_type"`
	CreatedBy   uint64            `json:"created_by"`
	Priority    uint8             `json:"priority"`
}

// UpdateTicketRequest payload. Omitted fields are left untouched.
type UpdateTicketRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Type        *domain.TicketType `json:"ticket_type"`
	Priority    *uint8             `json:"priority"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// AssignTicketRequest payload. A null assignee_id clears the assignment.
type AssignTicketRequest struct {
	AssigneeID *uint64 `json:"assignee_id"`
}

// CreateMessageRequest payload.
type CreateMessageRequest struct {
	UserID  uint64 `json:"user_id"`
	Content string `json:"content"`
}

// MessageResponse represents one thread entry.
type MessageResponse struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketResponse provides full ticket info.
type TicketResponse struct {
	ID          uint64              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Type        domain.TicketType   `json:"ticket_type"`
	Status      domain.TicketStatus `json:"status"`
	AssigneeID  *uint64             `json:"assignee_id"`
	CreatedBy   uint64              `json:"created_by"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	ResolvedAt  *time.Time          `json:"resolved_at"`
	Priority    uint8               `json:"priority"`
	Messages    []MessageResponse   `json:"messages"`
}

// StatsResponse reports aggregate ticket statistics.
type StatsResponse struct {
	Total               int            `json:"total"`
	Open                int            `json:"open"`
	InProgress          int            `json:"in_progress"`
	OnHold              int            `json:"on_hold"`
	Resolved            int            `json:"resolved"`
	Closed              int            `json:"closed"`
	ByType              map[string]int `json:"by_type"`
	AvgResolutionTimeMS int64          `json:"avg_resolution_time_ms"`
}
