// README: Ride service implements the request lifecycle over the store.
package ride

import (
	"context"
	"time"

	"mishwar/internal/types"
)

type Service struct {
	store *Store
	ttl   time.Duration

	// onExpired is invoked outside the store lock for every request the
	// expiry sweep removed.
	onExpired func(Request)
}

func NewService(store *Store, ttl time.Duration) *Service {
	return &Service{store: store, ttl: ttl}
}

// SetExpiredFunc registers the expiry notification hook. Must be called
// before RunExpiry starts.
func (s *Service) SetExpiredFunc(fn func(Request)) {
	s.onExpired = fn
}

type SubmitCommand struct {
	PassengerID types.ID
	Name        string
	Phone       string
	Position    types.Point
}

type AcceptCommand struct {
	DriverID    types.ID
	PassengerID types.ID
	DriverName  string
	DriverPhone string
}

// Submit records a ride request keyed by passenger id and returns the
// stored record. A pending request from the same passenger is replaced.
func (s *Service) Submit(cmd SubmitCommand) Request {
	r := Request{
		ID:          cmd.PassengerID,
		Name:        cmd.Name,
		Phone:       cmd.Phone,
		Point:       cmd.Position,
		RequestedAt: time.Now(),
	}
	s.store.Upsert(r)
	return r
}

// Accept tries to win the request for the given passenger. The store's
// atomic remove is the sole arbiter: the first driver whose remove
// succeeds gets ok=true, every later attempt gets ok=false and no
// Acceptance. Accepting an id that was never requested is a no-op.
func (s *Service) Accept(cmd AcceptCommand) (Acceptance, bool) {
	if !s.store.Remove(cmd.PassengerID) {
		return Acceptance{}, false
	}
	name := cmd.DriverName
	if name == "" {
		name = defaultDriverName
	}
	return Acceptance{
		PassengerID: cmd.PassengerID,
		DriverID:    cmd.DriverID,
		DriverName:  name,
		DriverPhone: cmd.DriverPhone,
	}, true
}

// Snapshot exposes the pending requests for late joiners.
func (s *Service) Snapshot() map[types.ID]Request {
	return s.store.Snapshot()
}

// RunExpiry sweeps out requests older than the TTL until the context is
// cancelled.
func (s *Service) RunExpiry(ctx context.Context, tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.expire(time.Now())
		}
	}
}

func (s *Service) expire(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for _, r := range s.store.ExpireBefore(now.Add(-s.ttl)) {
		if s.onExpired != nil {
			s.onExpired(r)
		}
	}
}
