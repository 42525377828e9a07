package domain

import "errors"

// Role is the closed set of actor roles. There is no third role; every
// consumer must treat an unknown value as unauthenticated.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

var ErrInvalidPrincipal = errors.New("invalid principal")

// Principal is the authenticated identity derived from a verified session
// token. Student principals always carry the owning student's id; admin
// principals never do.
type Principal struct {
	Role      Role
	StudentID string
}

// AdminPrincipal returns the administrator principal.
func AdminPrincipal() Principal {
	return Principal{Role: RoleAdmin}
}

// StudentPrincipal returns a principal scoped to the given student.
func StudentPrincipal(studentID string) Principal {
	return Principal{Role: RoleStudent, StudentID: studentID}
}

// Validate enforces the role/identity invariant.
func (p Principal) Validate() error {
	switch p.Role {
	case RoleAdmin:
		if p.StudentID != "" {
			return ErrInvalidPrincipal
		}
	case RoleStudent:
		if p.StudentID == "" {
			return ErrInvalidPrincipal
		}
	default:
		return ErrInvalidPrincipal
	}
	return nil
}
