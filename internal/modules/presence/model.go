// README: Active driver records as broadcast on the map.
package presence

import "mishwar/internal/types"

// Status values are echoed from clients verbatim; these are the ones the
// apps currently send.
type Status string

const (
	StatusAvailable Status = "available"
	StatusBusy      Status = "busy"
	StatusOffline   Status = "offline"
)

type VehicleType string

const (
	VehicleTuktuk   VehicleType = "tuktuk"
	VehicleMoto     VehicleType = "moto"
	VehicleTricycle VehicleType = "tricycle"
)

// Driver is the latest known state of one driver, keyed by ID with
// last-write-wins semantics.
type Driver struct {
	ID types.ID `json:"id"`
	types.Point
	Status      Status      `json:"status"`
	VehicleType VehicleType `json:"type"`
}
