package store

import (
	"slices"

	"github.com/vex-labs/vex-backend/internal/domain"
)

// UserTable is a key-ordered mapping from user ID to user record.
type UserTable struct {
	rows map[uint64]*domain.User
}

// NewUserTable returns an empty table.
func NewUserTable() *UserTable {
	return &UserTable{rows: make(map[uint64]*domain.User)}
}

// Get performs a point lookup.
func (t *UserTable) Get(id uint64) (*domain.User, bool) {
	user, ok := t.rows[id]
	return user, ok
}

// Put inserts or overwrites the record under its ID.
func (t *UserTable) Put(user *domain.User) {
	t.rows[user.ID] = user
}

// Delete removes the record, reporting whether it existed.
func (t *UserTable) Delete(id uint64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// Len returns the number of stored users.
func (t *UserTable) Len() int {
	return len(t.rows)
}

// Ascend returns all users in ascending ID order.
func (t *UserTable) Ascend() []*domain.User {
	ids := make([]uint64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	users := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, t.rows[id])
	}
	return users
}

// TicketTable is a key-ordered mapping from ticket ID to ticket record.
type TicketTable struct {
	rows map[uint64]*domain.Ticket
}

// NewTicketTable returns an empty table.
func NewTicketTable() *TicketTable {
	return &TicketTable{rows: make(map[uint64]*domain.Ticket)}
}

// Get performs a point lookup.
func (t *TicketTable) Get(id uint64) (*domain.Ticket, bool) {
	ticket, ok := t.rows[id]
	return ticket, ok
}

// Put inserts or overwrites the record under its ID.
func (t *TicketTable) Put(ticket *domain.Ticket) {
	t.rows[ticket.ID] = ticket
}

// Delete removes the record, reporting whether it existed.
func (t *TicketTable) Delete(id uint64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// Len returns the number of stored tickets.
func (t *TicketTable) Len() int {
	return len(t.rows)
}

// Ascend returns all tickets in ascending ID order.
func (t *TicketTable) Ascend() []*domain.Ticket {
	ids := make([]uint64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	tickets := make([]*domain.Ticket, 0, len(ids))
	for _, id := range ids {
		tickets = append(tickets, t.rows[id])
	}
	return tickets
}
