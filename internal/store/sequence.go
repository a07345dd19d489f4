package store

// Sequence allocates strictly increasing identifiers for one entity kind,
// starting at 1. Allocated values are never reused, even after the entity
// they named has been deleted.
type Sequence struct {
	last uint64
}

// Next advances the counter and returns the new value.
func (s *Sequence) Next() uint64 {
	s.last++
	return s.last
}

// Current returns the most recently allocated identifier, 0 if none.
func (s *Sequence) Current() uint64 {
	return s.last
}

// Restore resets the counter to a previously persisted position.
func (s *Sequence) Restore(last uint64) {
	s.last = last
}
