package store

import "github.com/vex-labs/vex-backend/internal/domain"

// Snapshot is a point-in-time copy of all store state. The durability layer
// persists snapshots so that table contents observed after a restart equal
// the contents before it.
type Snapshot struct {
	Users     []domain.User   `json:"users"`
	Tickets   []domain.Ticket `json:"tickets"`
	UserSeq   uint64          `json:"user_seq"`
	TicketSeq uint64          `json:"ticket_seq"`

	// Revision identifies the store state this snapshot was taken at. It is
	// process-local and not persisted.
	Revision uint64 `json:"-"`
}

// Export copies the full store state under the lock. The returned snapshot
// shares nothing with live records.
func (s *Store) Export() Snapshot {
	s.Lock()
	defer s.Unlock()

	snap := Snapshot{
		UserSeq:   s.UserSeq.Current(),
		TicketSeq: s.TicketSeq.Current(),
		Revision:  s.rev,
	}
	for _, user := range s.Users.Ascend() {
		snap.Users = append(snap.Users, *user)
	}
	for _, ticket := range s.Tickets.Ascend() {
		snap.Tickets = append(snap.Tickets, *ticket.Clone())
	}
	return snap
}

// Restore replaces all store contents with the snapshot.
func (s *Store) Restore(snap Snapshot) {
	s.Lock()
	defer s.Unlock()

	s.Users = NewUserTable()
	s.Tickets = NewTicketTable()
	for i := range snap.Users {
		user := snap.Users[i]
		s.Users.Put(&user)
	}
	for i := range snap.Tickets {
		s.Tickets.Put(snap.Tickets[i].Clone())
	}
	s.UserSeq.Restore(snap.UserSeq)
	s.TicketSeq.Restore(snap.TicketSeq)
}
