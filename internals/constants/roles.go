package constants

import "fmt"

// Role names persisted on the users table and carried in JWT claims.
const (
	RoleAsker     = "ASKER"
	RoleResponder = "RESPONDER"
	RoleAdmin     = "ADMIN"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAsker,
		RoleResponder,
		RoleAdmin,
	}

	// Roles a user may pick at registration. ADMIN is seeded, never self-assigned.
	RegisterableRoles = []string{
		RoleAsker,
		RoleResponder,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// IsValidRole reports whether role is one of the known role names.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsRegisterableRole reports whether a user may self-assign role at registration.
func IsRegisterableRole(role string) bool {
	for _, r := range RegisterableRoles {
		if r == role {
			return true
		}
	}
	return false
}
