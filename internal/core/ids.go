package core

import (
	"sync"
	"time"
)

// Sequence hands out process-wide unique ids for list elements.
// It starts at the current wall clock in milliseconds and only moves forward.
type Sequence struct {
	mu   sync.Mutex
	next int
}

// NewSequence creates a sequence seeded from the clock.
func NewSequence() *Sequence {
	return NewSequenceFrom(int(time.Now().UnixMilli()))
}

// NewSequenceFrom creates a sequence whose first id is start.
func NewSequenceFrom(start int) *Sequence {
	return &Sequence{next: start}
}

// NextID returns a fresh id.
func (s *Sequence) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	return id
}

// Reserve ensures every future id is greater than used.
func (s *Sequence) Reserve(used int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if used >= s.next {
		s.next = used + 1
	}
}
