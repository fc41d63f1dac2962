// README: Ride request record and lifecycle definitions.
package ride

import (
	"time"

	"mishwar/internal/types"
)

// Request is a pending ride request. Its ID is the requesting passenger's
// ID, so a re-request from the same passenger overwrites the old one.
type Request struct {
	ID    types.ID `json:"passenger_id"`
	Name  string   `json:"name"`
	Phone string   `json:"phone"`
	types.Point
	RequestedAt time.Time `json:"-"`
}

// Acceptance is the outcome of a driver winning a request.
type Acceptance struct {
	PassengerID types.ID `json:"passenger_id"`
	DriverID    types.ID `json:"driver_id"`
	DriverName  string   `json:"driver_name"`
	DriverPhone string   `json:"driver_phone"`
}

// defaultDriverName is shown to the passenger when the accepting driver
// did not supply a display name.
const defaultDriverName = "السائق"

// A request moves NONE → REQUESTED → ACCEPTED. REQUESTED is re-enterable
// by the same passenger (overwrite); ACCEPTED and EXPIRED are terminal and
// delete the record. There is no CANCELLED state.
