package models

// Role is the closed enumeration of account types known to the system.
type Role string

const (
	RoleCommon        Role = "COMMON"
	RoleAdministrator Role = "ADMINISTRATOR"
	RoleTechnician    Role = "TECHNICIAN"
	RoleDoctor        Role = "DOCTOR"
)

// RoleDisplay carries the presentation metadata for a role. Every view that
// renders a role badge must consult this table instead of keeping its own
// label or color mapping.
type RoleDisplay struct {
	// Label is the human-readable role name.
	Label string

	// Color is the hex color used for the role badge.
	Color string
}

var roleDisplayTable = map[Role]RoleDisplay{
	RoleCommon:        {Label: "Common User", Color: "#6b7280"},
	RoleAdministrator: {Label: "Administrator", Color: "#dc2626"},
	RoleTechnician:    {Label: "Technician", Color: "#f59e0b"},
	RoleDoctor:        {Label: "Doctor", Color: "#2563eb"},
}

// Display returns the presentation metadata for the role. Unknown roles fall
// back to the raw value with the common-user color so a new server-side role
// never breaks rendering.
func (r Role) Display() RoleDisplay {
	if d, ok := roleDisplayTable[r]; ok {
		return d
	}
	label := string(r)
	if label == "" {
		label = "No role"
	}
	return RoleDisplay{Label: label, Color: roleDisplayTable[RoleCommon].Color}
}

// Valid reports whether the role is one of the known enumeration values.
func (r Role) Valid() bool {
	_, ok := roleDisplayTable[r]
	return ok
}

// Roles lists all known roles in a stable order, used by the register form
// role selector.
func Roles() []Role {
	return []Role{RoleCommon, RoleAdministrator, RoleTechnician, RoleDoctor}
}
