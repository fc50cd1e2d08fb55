package impl

import "sync/atomic"

// loadSequence orders the results of overlapping loads of one collection.
// A load takes a ticket before querying and may only apply its result if no
// later ticket has been applied. Invalidate discards every load in flight.
//
// applied is guarded by the owning service's mutex.
type loadSequence struct {
	issued  atomic.Uint64
	applied uint64
}

func (s *loadSequence) next() uint64 {
	return s.issued.Add(1)
}

// tryApply must be called with the owner's lock held.
func (s *loadSequence) tryApply(ticket uint64) bool {
	if ticket <= s.applied {
		return false
	}
	s.applied = ticket

	return true
}

// invalidate must be called with the owner's lock held.
func (s *loadSequence) invalidate() {
	s.applied = s.issued.Load()
}
