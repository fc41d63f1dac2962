// README: Ride service tests (request/accept flow + expiry).
package ride

import (
	"testing"
	"time"

	"mishwar/internal/types"
)

func newTestService(ttl time.Duration) *Service {
	return NewService(NewStore(), ttl)
}

func TestSubmitThenAccept(t *testing.T) {
	svc := newTestService(time.Minute)

	svc.Submit(SubmitCommand{
		PassengerID: "p1",
		Name:        "Ali",
		Phone:       "0100",
		Position:    types.Point{Lat: 30.1, Lng: 31.1},
	})

	acc, ok := svc.Accept(AcceptCommand{DriverID: "d1", PassengerID: "p1"})
	if !ok {
		t.Fatal("expected accept of pending request to succeed")
	}
	if acc.PassengerID != "p1" || acc.DriverID != "d1" {
		t.Errorf("unexpected acceptance: %+v", acc)
	}
	if acc.DriverName != "السائق" {
		t.Errorf("expected default driver name, got %q", acc.DriverName)
	}
	if acc.DriverPhone != "" {
		t.Errorf("expected empty default driver phone, got %q", acc.DriverPhone)
	}

	if _, pending := svc.store.Get("p1"); pending {
		t.Error("accepted request must be removed from the store")
	}
}

func TestAcceptCarriesDriverDetails(t *testing.T) {
	svc := newTestService(time.Minute)
	svc.Submit(SubmitCommand{PassengerID: "p1", Name: "Ali", Phone: "0100"})

	acc, ok := svc.Accept(AcceptCommand{
		DriverID:    "d1",
		PassengerID: "p1",
		DriverName:  "Hassan",
		DriverPhone: "0111",
	})
	if !ok {
		t.Fatal("accept failed")
	}
	if acc.DriverName != "Hassan" || acc.DriverPhone != "0111" {
		t.Errorf("expected supplied driver details, got %+v", acc)
	}
}

func TestAcceptUnknownRequest(t *testing.T) {
	svc := newTestService(time.Minute)

	if _, ok := svc.Accept(AcceptCommand{DriverID: "d1", PassengerID: "ghost"}); ok {
		t.Error("accept of a never-requested id must report false")
	}
}

func TestAcceptTwice(t *testing.T) {
	svc := newTestService(time.Minute)
	svc.Submit(SubmitCommand{PassengerID: "p1"})

	if _, ok := svc.Accept(AcceptCommand{DriverID: "d1", PassengerID: "p1"}); !ok {
		t.Fatal("first accept should win")
	}
	if _, ok := svc.Accept(AcceptCommand{DriverID: "d2", PassengerID: "p1"}); ok {
		t.Error("second accept must lose")
	}
}

func TestResubmitOverwrites(t *testing.T) {
	svc := newTestService(time.Minute)

	svc.Submit(SubmitCommand{PassengerID: "p1", Name: "Ali", Position: types.Point{Lat: 30.1, Lng: 31.1}})
	svc.Submit(SubmitCommand{PassengerID: "p1", Name: "Ali", Position: types.Point{Lat: 30.2, Lng: 31.2}})

	snap := svc.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected 1 pending request, got %d", len(snap))
	}
	if snap["p1"].Lat != 30.2 {
		t.Errorf("expected latest position, got %+v", snap["p1"])
	}
}

func TestExpireBefore(t *testing.T) {
	store := NewStore()
	svc := NewService(store, time.Minute)

	var expired []Request
	svc.SetExpiredFunc(func(r Request) { expired = append(expired, r) })

	old := Request{ID: "p_old", RequestedAt: time.Now().Add(-2 * time.Minute)}
	fresh := Request{ID: "p_new", RequestedAt: time.Now()}
	store.Upsert(old)
	store.Upsert(fresh)

	svc.expire(time.Now())

	if len(expired) != 1 || expired[0].ID != "p_old" {
		t.Fatalf("expected only p_old to expire, got %+v", expired)
	}
	if _, ok := store.Get("p_old"); ok {
		t.Error("expired request must be removed")
	}
	if _, ok := store.Get("p_new"); !ok {
		t.Error("fresh request must survive the sweep")
	}
}

func TestExpireDisabledWithZeroTTL(t *testing.T) {
	store := NewStore()
	svc := NewService(store, 0)

	store.Upsert(Request{ID: "p1", RequestedAt: time.Now().Add(-time.Hour)})
	svc.expire(time.Now())

	if _, ok := store.Get("p1"); !ok {
		t.Error("expiry must be a no-op when TTL is zero")
	}
}
