package domain

// Actor is the authenticated caller, built once from verified session claims
// by the authentication middleware and passed through the request context.
// All authorization decisions go through its methods; handlers never inspect
// raw claims and there is no ambient mutable auth state.
type Actor struct {
	UserID   string
	Email    string
	Role     Role
	AgencyID string
	ClientID string // set iff Role == RoleClient
}

// CanAccess is the single (role, resource-tenant) -> allow/deny decision.
// Staff may touch resources of their own agency; client users only go through
// the portal paths, which scope by ClientID instead.
func (a Actor) CanAccess(resourceAgencyID string) bool {
	if !a.Role.IsStaff() {
		return false
	}
	return a.AgencyID != "" && a.AgencyID == resourceAgencyID
}

// IsStaff reports whether the actor can use agency dashboard routes.
func (a Actor) IsStaff() bool { return a.Role.IsStaff() }

// IsClient reports whether the actor is a portal user with a bound client.
func (a Actor) IsClient() bool { return a.Role == RoleClient && a.ClientID != "" }
