package authz

import "github.com/google/uuid"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is the authenticated caller. It is passed explicitly into every
// domain operation that gates on ownership; domain code never reads it from
// ambient state.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

// IsAdmin reports whether the identity carries the admin role.
func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}

// IsZero reports whether no caller is authenticated.
func (id Identity) IsZero() bool {
	return id.UserID == uuid.Nil
}

// Allowed is the single ownership capability: the resource owner and admins
// pass, everyone else fails.
func Allowed(owner uuid.UUID, id Identity) bool {
	if id.IsZero() {
		return false
	}
	return owner == id.UserID || id.IsAdmin()
}
