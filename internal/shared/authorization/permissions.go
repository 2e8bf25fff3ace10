// Package authorization derives caller capabilities from the permission set
// supplied by the external identity provider.
package authorization

// AdminPanelPermission is the permission string whose presence makes a
// caller an admin for forum moderation and full-visibility listing.
const AdminPanelPermission = "access:admin_panel"

// IsAdmin reports whether the permission set grants admin rights.
func IsAdmin(permissions []string) bool {
	for _, p := range permissions {
		if p == AdminPanelPermission {
			return true
		}
	}
	return false
}
