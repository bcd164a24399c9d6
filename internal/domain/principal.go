package domain

// Principal is the resolved identity attached to a request.
// The zero value is the anonymous principal.
type Principal struct {
	UserID     string
	Email      string
	Role       string
	EmployeeID string
}

func (p Principal) IsAnonymous() bool {
	return p.Email == ""
}

func (p Principal) IsAdmin() bool {
	return !p.IsAnonymous() && p.Role == RoleAdmin
}

// HasRole reports whether p is authenticated and holds one of roles.
func HasRole(p Principal, roles ...string) bool {
	if p.IsAnonymous() {
		return false
	}
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

// CanAccessEmployee is the owner-or-admin rule for per-employee resources.
func CanAccessEmployee(p Principal, employeeID string) bool {
	if p.IsAdmin() {
		return true
	}
	return !p.IsAnonymous() && p.EmployeeID != "" && p.EmployeeID == employeeID
}
