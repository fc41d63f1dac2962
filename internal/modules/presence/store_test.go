package presence

import (
	"fmt"
	"sync"
	"testing"

	"mishwar/internal/types"
)

func TestStore_LastWriteWins(t *testing.T) {
	store := NewStore()

	store.Upsert(Driver{ID: "d1", Point: types.Point{Lat: 30.0, Lng: 31.0}, Status: StatusAvailable, VehicleType: VehicleTuktuk})
	store.Upsert(Driver{ID: "d1", Point: types.Point{Lat: 30.5, Lng: 31.5}, Status: StatusBusy, VehicleType: VehicleTuktuk})

	d, ok := store.Get("d1")
	if !ok {
		t.Fatal("expected d1 to exist")
	}
	if d.Lat != 30.5 || d.Lng != 31.5 || d.Status != StatusBusy {
		t.Errorf("expected latest record, got %+v", d)
	}
	if n := len(store.Snapshot()); n != 1 {
		t.Errorf("expected 1 driver, got %d", n)
	}
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	store := NewStore()
	store.Upsert(Driver{ID: "d1", Point: types.Point{Lat: 30.0, Lng: 31.0}})

	snap := store.Snapshot()
	snap["d2"] = Driver{ID: "d2"}

	if _, ok := store.Get("d2"); ok {
		t.Error("mutating a snapshot must not touch the store")
	}
}

func TestStore_Remove(t *testing.T) {
	store := NewStore()
	store.Upsert(Driver{ID: "d1"})

	if !store.Remove("d1") {
		t.Error("expected Remove of existing driver to report true")
	}
	if store.Remove("d1") {
		t.Error("expected Remove of absent driver to report false")
	}
	if _, ok := store.Get("d1"); ok {
		t.Error("expected d1 to be gone")
	}
}

func TestStore_ConcurrentUpserts(t *testing.T) {
	store := NewStore()

	const workers = 16
	const updates = 100
	var wg sync.WaitGroup
	start := make(chan struct{})

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			<-start
			id := types.ID(fmt.Sprintf("d%d", w%4))
			for i := 0; i < updates; i++ {
				store.Upsert(Driver{ID: id, Point: types.Point{Lat: float64(i), Lng: float64(w)}})
				store.Snapshot()
			}
		}(w)
	}

	close(start)
	wg.Wait()

	if n := len(store.Snapshot()); n != 4 {
		t.Errorf("expected 4 drivers after concurrent updates, got %d", n)
	}
}
