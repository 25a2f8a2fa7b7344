package domain

import "fmt"

// Role partitions directory accounts. Students and alumni carry a profile
// record keyed by their user id; department accounts are administrative and
// have no profile.
type Role string

const (
	RoleStudent    Role = "student"
	RoleAlumni     Role = "alumni"
	RoleDepartment Role = "department"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAlumni, RoleDepartment:
		return true
	}
	return false
}

// HasProfile reports whether accounts with this role own a directory
// profile record.
func (r Role) HasProfile() bool {
	return r == RoleStudent || r == RoleAlumni
}

// ParseRole validates a raw role string.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
