package domain

// Identity is the session-scoping result of authentication: the (city,
// role) pair restricts which records the caller may read or write. It is
// re-derived from the verified session token on every request.
type Identity struct {
	Username string
	City     string
	Role     Role
}

// CanAccessCity reports whether the identity may read or write records in
// the given city. Administrators (and the all-cities sentinel) span
// cities; supervisors are fenced to their own.
func (id Identity) CanAccessCity(city string) bool {
	if id.Role == RoleAdministrator {
		return true
	}
	if id.City == CityAll {
		return true
	}
	return id.City == city
}
