package entity

// RoleAdmin is the role allowed to manage any place when the admin override is enabled.
const RoleAdmin = "admin"

// User is the authenticated account as reported by the places service.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanManage reports whether the user may edit or delete place. Admins may
// manage any place only when adminOverride is enabled.
// An account without an id manages nothing.
func (u User) CanManage(place Place, adminOverride bool) bool {
	if u.ID == "" {
		return false
	}
	if place.IsOwnedBy(u.ID) {
		return true
	}

	return adminOverride && u.IsAdmin()
}
