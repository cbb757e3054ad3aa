package models

// Principal is the stored identity a login name resolves to.
//
// Principals are provisioned by the host application. This module only
// reads them, except for the well-known administrator row created by the
// admin bootstrap.
type Principal struct {
	// ID is the stable, immutable identifier generated at creation (UUID v7).
	ID string `json:"id"`

	// Name is the unique login name.
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Principal model.
func (p Principal) TableName() string {
	return "principals"
}

// Role groups claims that can be granted to many principals at once.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Role model.
func (r Role) TableName() string {
	return "roles"
}

// PrincipalRole links a principal to one of its roles.
type PrincipalRole struct {
	PrincipalID string `json:"principal_id"`
	RoleID      string `json:"role_id"`
}
