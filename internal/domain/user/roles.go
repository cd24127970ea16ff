package user

// RoleAllowed reports whether role is a member of the allowed set. Every
// protected operation declares its allowed roles at the point of definition;
// there is no implicit admin bypass, so a set that should admit admins must
// name RoleAdmin explicitly.
func RoleAllowed(role Role, allowed ...Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
