package session

import "sync"

// ResultSlot holds the most recent analysis result. Each new query begins a
// token; a result is applied only while its token is still the latest, so a
// slow in-flight call that finishes after a newer query cannot overwrite the
// newer state with stale data.
type ResultSlot[T any] struct {
	mu     sync.Mutex
	latest uint64
	value  *T
}

// Begin registers a new query and returns its token, superseding any
// in-flight one.
func (s *ResultSlot[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	return s.latest
}

// Apply stores v if token still identifies the latest query. Returns whether
// the value was applied.
func (s *ResultSlot[T]) Apply(token uint64, v *T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.latest {
		return false
	}
	s.value = v
	return true
}

// Current returns the value from the most recently applied query, or nil.
func (s *ResultSlot[T]) Current() *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}
