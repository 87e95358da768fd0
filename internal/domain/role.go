package domain

// Role determines which surface of the product a user can reach.
type Role string

const (
	// RoleOwner is the user who registered the agency.
	RoleOwner Role = "owner"
	// RoleManager is additional agency staff.
	RoleManager Role = "manager"
	// RoleClient is a portal user provisioned through an invite.
	RoleClient Role = "client"
)

// IsStaff reports whether the role can use the agency dashboard.
func (r Role) IsStaff() bool { return r == RoleOwner || r == RoleManager }

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleClient:
		return true
	}
	return false
}
