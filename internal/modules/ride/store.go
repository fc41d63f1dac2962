// README: In-memory ride request store; its delete is the acceptance arbiter.
package ride

import (
	"sync"
	"time"

	"mishwar/internal/types"
)

type Store struct {
	mu       sync.Mutex
	requests map[types.ID]Request
}

func NewStore() *Store {
	return &Store{requests: make(map[types.ID]Request)}
}

// Upsert stores a request, replacing any pending one under the same id.
func (s *Store) Upsert(r Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[r.ID] = r
}

// Remove deletes a request and reports whether it existed. Removing an
// absent id is a no-op, never an error. The check and the delete happen
// under one lock, so concurrent acceptors see exactly one true.
func (s *Store) Remove(id types.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.requests[id]
	delete(s.requests, id)
	return ok
}

// Get returns one pending request.
func (s *Store) Get(id types.ID) (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	return r, ok
}

// Snapshot returns a point-in-time copy of all pending requests.
func (s *Store) Snapshot() map[types.ID]Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[types.ID]Request, len(s.requests))
	for id, r := range s.requests {
		out[id] = r
	}
	return out
}

// ExpireBefore removes every request submitted before the cutoff and
// returns the removed records.
func (s *Store) ExpireBefore(cutoff time.Time) []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	var expired []Request
	for id, r := range s.requests {
		if r.RequestedAt.Before(cutoff) {
			expired = append(expired, r)
			delete(s.requests, id)
		}
	}
	return expired
}
