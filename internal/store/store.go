// Package store owns the mutable state of the service: the ordered entity
// tables, the per-kind identifier sequences, and the mutex that serializes
// access to them. Services hold the lock for the full read-validate-write
// span of each operation, so an existence check can never interleave with a
// deletion of the entity it just verified.
package store

import (
	"sync"
	"time"
)

// Store is the single service context owning all entity state.
type Store struct {
	sync.Mutex

	Users   *UserTable
	Tickets *TicketTable

	UserSeq   Sequence
	TicketSeq Sequence

	clock func() time.Time
	rev   uint64
}

// New builds an empty store. A nil clock defaults to time.Now.
func New(clock func() time.Time) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{
		Users:   NewUserTable(),
		Tickets: NewTicketTable(),
		clock:   clock,
	}
}

// Now reads the store's wall clock. Callers must hold the lock so that
// timestamps observed within one operation are consistent.
func (s *Store) Now() time.Time {
	return s.clock()
}

// MarkDirty advances the revision after a mutation. Callers must hold the
// lock.
func (s *Store) MarkDirty() {
	s.rev++
}
