package domain

import "github.com/google/uuid"

type Role string

const (
	RoleUser       Role = "user"
	RoleDriver     Role = "driver"
	RoleDispatcher Role = "dispatcher"
	RoleCompany    Role = "company"
	RoleAdmin      Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleDriver, RoleDispatcher, RoleCompany, RoleAdmin:
		return true
	default:
		return false
	}
}

// Actor is the authenticated caller context attached per request by the auth
// middleware. The core never authenticates; it only authorizes given this.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

// roleCaps is the single dispatch table for role capabilities. Adding a role
// means adding one row here, not another switch statement.
var roleCaps = map[Role]struct {
	proposePrice bool
	assignDriver bool
	manageFleet  bool
}{
	RoleUser:       {},
	RoleDriver:     {},
	RoleDispatcher: {proposePrice: true, assignDriver: true},
	RoleCompany:    {proposePrice: true, assignDriver: true, manageFleet: true},
	RoleAdmin:      {proposePrice: true, assignDriver: true, manageFleet: true},
}

// CanProposePrice reports whether the role may set an ask price on a load.
func (r Role) CanProposePrice() bool { return roleCaps[r].proposePrice }

// CanAssignDriver reports whether the role may assign drivers to loads.
func (r Role) CanAssignDriver() bool { return roleCaps[r].assignDriver }

// CanManageFleet reports whether the role may create drivers and dispatchers.
func (r Role) CanManageFleet() bool { return roleCaps[r].manageFleet }
