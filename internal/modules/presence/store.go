// README: In-memory driver store; the single owner of driver presence.
package presence

import (
	"sync"

	"mishwar/internal/types"
)

type Store struct {
	mu      sync.Mutex
	drivers map[types.ID]Driver
}

func NewStore() *Store {
	return &Store{drivers: make(map[types.ID]Driver)}
}

// Upsert records the latest state for a driver, replacing any prior value.
func (s *Store) Upsert(d Driver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drivers[d.ID] = d
}

// Remove deletes a driver record and reports whether it existed.
func (s *Store) Remove(id types.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.drivers[id]
	delete(s.drivers, id)
	return ok
}

// Get returns one driver record.
func (s *Store) Get(id types.ID) (Driver, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drivers[id]
	return d, ok
}

// Snapshot returns a point-in-time copy of all driver records.
func (s *Store) Snapshot() map[types.ID]Driver {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[types.ID]Driver, len(s.drivers))
	for id, d := range s.drivers {
		out[id] = d
	}
	return out
}
