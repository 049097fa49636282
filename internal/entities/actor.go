package entities

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleDriver     Role = "driver"
	RoleCourier    Role = "courier"
	RoleRestaurant Role = "restaurant"
	RoleOperator   Role = "operator"
	RoleSystem     Role = "system"
)

func (r Role) String() string {
	return string(r)
}

func IsValidRole(s string) bool {
	switch Role(s) {
	case RoleCustomer, RoleDriver, RoleCourier, RoleRestaurant, RoleOperator:
		return true
	default:
		return false
	}
}

// Actor is an already-authenticated identity. The core never parses tokens;
// transport middleware supplies this.
type Actor struct {
	ID   string
	Role Role
}

// SystemActor marks mutations driven by the platform itself (auto-match,
// expiry sweeps).
var SystemActor = Actor{ID: "system", Role: RoleSystem}

// ProviderRoleFor is the counter-party role eligible to bid on a job kind.
func ProviderRoleFor(kind JobKind) Role {
	if kind == KindDelivery {
		return RoleCourier
	}
	return RoleDriver
}
