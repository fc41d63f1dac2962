// README: Common value objects shared across modules.
package types

// ID identifies a driver, passenger, or ride request.
type ID string

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Role classifies a connected client for fan-out partitioning.
type Role string

const (
	RoleDriver    Role = "driver"
	RolePassenger Role = "passenger"
	RoleAdmin     Role = "admin"
)

// ParseRole maps a wire value onto a known role.
func ParseRole(v string) (Role, bool) {
	switch Role(v) {
	case RoleDriver, RolePassenger, RoleAdmin:
		return Role(v), true
	}
	return "", false
}
