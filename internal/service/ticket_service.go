package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vex-labs/vex-backend/internal/domain"
	"github.com/vex-labs/vex-backend/internal/events"
	"github.com/vex-labs/vex-backend/internal/observability"
	"github.com/vex-labs/vex-backend/internal/store"
	apperrors "github.com/vex-labs/vex-backend/pkg/util"
)

// TicketService coordinates ticket workflows against the shared store.
type TicketService struct {
	store      *store.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	Store      *store.Store
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Title       string
	Description string
	Type        domain.TicketType
	CreatedBy   uint64
	Priority    uint8
}

// TicketUpdateInput carries the optional fields for UpdateTicket. Nil fields
// are left untouched.
type TicketUpdateInput struct {
	Title       *string
	Description *string
	Type        *domain.TicketType
	Priority    *uint8
}

// TicketFilter is a single filtered-scan capability over the ticket table.
// Nil predicates match everything.
type TicketFilter struct {
	Type       *domain.TicketType
	Status     *domain.TicketStatus
	AssigneeID *uint64
}

func (f TicketFilter) matches(ticket *domain.Ticket) bool {
	if f.Type != nil && ticket.Type != *f.Type {
		return false
	}
	if f.Status != nil && ticket.Status != *f.Status {
		return false
	}
	if f.AssigneeID != nil {
		if ticket.AssigneeID == nil || *ticket.AssigneeID != *f.AssigneeID {
			return false
		}
	}
	return true
}

// CreateTicket validates priority and the creating user, then inserts a new
// Open ticket with an empty message thread.
func (s *TicketService) CreateTicket(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	st := s.store
	st.Lock()
	defer st.Unlock()

	if !domain.ValidPriority(input.Priority) {
		return nil, apperrors.NewValidationError("priority must be between 1 and 5", map[string]any{"priority": input.Priority})
	}
	if _, ok := st.Users.Get(input.CreatedBy); !ok {
		return nil, apperrors.NewNotFound("user", input.CreatedBy)
	}

	now := st.Now()
	ticket := &domain.Ticket{
		ID:          st.TicketSeq.Next(),
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Status:      domain.TicketStatusOpen,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
		Priority:    input.Priority,
		Messages:    []domain.Message{},
	}
	st.Tickets.Put(ticket)
	st.MarkDirty()
	observability.SetEntityCount("ticket", st.Tickets.Len())

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload: events.TicketCreatedPayload{
			CreatedBy: ticket.CreatedBy,
			Type:      ticket.Type,
			Priority:  ticket.Priority,
			Title:     ticket.Title,
		},
	})
	return ticket.Clone(), nil
}

// GetTicket performs a point lookup. Absence is a result here, not an error.
func (s *TicketService) GetTicket(ctx context.Context, id uint64) (*domain.Ticket, bool) {
	st := s.store
	st.Lock()
	defer st.Unlock()

	ticket, ok := st.Tickets.Get(id)
	if !ok {
		return nil, false
	}
	return ticket.Clone(), true
}

// ListTickets scans the table in ascending ID order, keeping tickets the
// filter matches. The zero filter returns everything.
func (s *TicketService) ListTickets(ctx context.Context, filter TicketFilter) []domain.Ticket {
	st := s.store
	st.Lock()
	defer st.Unlock()

	var tickets []domain.Ticket
	for _, ticket := range st.Tickets.Ascend() {
		if filter.matches(ticket) {
			tickets = append(tickets, *ticket.Clone())
		}
	}
	return tickets
}

// UpdateTicketStatus sets the status and refreshes updated_at. A transition
// to Resolved stamps resolved_at with the current time, overwriting any
// earlier resolution timestamp.
func (s *TicketService) UpdateTicketStatus(ctx context.Context, id uint64, status domain.TicketStatus) (*domain.Ticket, error) {
	st := s.store
	st.Lock()
	defer st.Unlock()

	ticket, ok := st.Tickets.Get(id)
	if !ok {
		return nil, apperrors.NewNotFound("ticket", id)
	}

	oldStatus := ticket.Status
	ticket.Status = status
	ticket.UpdatedAt = st.Now()
	if status == domain.TicketStatusResolved {
		resolvedAt := ticket.UpdatedAt
		ticket.ResolvedAt = &resolvedAt
	}
	st.MarkDirty()

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
	return ticket.Clone(), nil
}

// AssignTicket sets or clears the assignee. A non-nil assignee must exist in
// the user store at the moment of assignment; it is not re-validated later.
func (s *TicketService) AssignTicket(ctx context.Context, id uint64, assigneeID *uint64) (*domain.Ticket, error) {
	st := s.store
	st.Lock()
	defer st.Unlock()

	ticket, ok := st.Tickets.Get(id)
	if !ok {
		return nil, apperrors.NewNotFound("ticket", id)
	}
	if assigneeID != nil {
		if _, ok := st.Users.Get(*assigneeID); !ok {
			return nil, apperrors.NewNotFound("assignee", *assigneeID)
		}
		assignee := *assigneeID
		ticket.AssigneeID = &assignee
	} else {
		ticket.AssigneeID = nil
	}
	ticket.UpdatedAt = st.Now()
	st.MarkDirty()

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		TicketID: ticket.ID,
		Payload:  events.TicketAssignedPayload{AssigneeID: ticket.AssigneeID},
	})
	return ticket.Clone(), nil
}

// UpdateTicket applies the supplied fields. Priority is validated before the
// ticket existence check.
func (s *TicketService) UpdateTicket(ctx context.Context, id uint64, input TicketUpdateInput) (*domain.Ticket, error) {
	st := s.store
	st.Lock()
	defer st.Unlock()

	if input.Priority != nil && !domain.ValidPriority(*input.Priority) {
		return nil, apperrors.NewValidationError("priority must be between 1 and 5", map[string]any{"priority": *input.Priority})
	}
	ticket, ok := st.Tickets.Get(id)
	if !ok {
		return nil, apperrors.NewNotFound("ticket", id)
	}

	if input.Title != nil {
		ticket.Title = *input.Title
	}
	if input.Description != nil {
		ticket.Description = *input.Description
	}
	if input.Type != nil {
		ticket.Type = *input.Type
	}
	if input.Priority != nil {
		ticket.Priority = *input.Priority
	}
	ticket.UpdatedAt = st.Now()
	st.MarkDirty()

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketUpdated,
		TicketID: ticket.ID,
	})
	return ticket.Clone(), nil
}

// DeleteTicket removes the ticket and its embedded messages.
func (s *TicketService) DeleteTicket(ctx context.Context, id uint64) error {
	st := s.store
	st.Lock()
	defer st.Unlock()

	if !st.Tickets.Delete(id) {
		return apperrors.NewNotFound("ticket", id)
	}
	st.MarkDirty()
	observability.SetEntityCount("ticket", st.Tickets.Len())

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketDeleted,
		TicketID: id,
	})
	return nil
}

// AddMessage appends a message to the ticket's thread. Message IDs are a
// per-ticket sequence: len(messages)+1.
func (s *TicketService) AddMessage(ctx context.Context, ticketID, userID uint64, content string) (*domain.Ticket, error) {
	st := s.store
	st.Lock()
	defer st.Unlock()

	ticket, ok := st.Tickets.Get(ticketID)
	if !ok {
		return nil, apperrors.NewNotFound("ticket", ticketID)
	}
	if _, ok := st.Users.Get(userID); !ok {
		return nil, apperrors.NewNotFound("user", userID)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewValidationError("message content must not be blank", nil)
	}

	now := st.Now()
	message := domain.Message{
		ID:        uint64(len(ticket.Messages)) + 1,
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
	}
	ticket.Messages = append(ticket.Messages, message)
	ticket.UpdatedAt = now
	st.MarkDirty()

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketMessageAdded,
		TicketID: ticket.ID,
		Payload: events.TicketMessageAddedPayload{
			MessageID:   message.ID,
			UserID:      userID,
			BodyPreview: stringPreview(content, 120),
		},
	})
	return ticket.Clone(), nil
}

// GetMessages returns the ticket's message thread in append order.
func (s *TicketService) GetMessages(ctx context.Context, ticketID uint64) ([]domain.Message, error) {
	st := s.store
	st.Lock()
	defer st.Unlock()

	ticket, ok := st.Tickets.Get(ticketID)
	if !ok {
		return nil, apperrors.NewNotFound("ticket", ticketID)
	}
	return append([]domain.Message(nil), ticket.Messages...), nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	observability.RecordEvent(string(event.Type))
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("type", string(event.Type)), zap.Error(err))
	}
}

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
