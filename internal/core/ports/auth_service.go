package ports

import (
	"context"

	"github.com/campusworks/tasktrack/internal/core/domain"
)

// RegisterStudentInput carries the data needed to provision a student.
type RegisterStudentInput struct {
	Name       string
	Email      string
	Department string
	Password   string
}

// AuthService implements the two login flows and student provisioning.
type AuthService interface {
	// AdminLogin checks the configured administrator credential and returns a
	// session token. Any mismatch fails with domain.ErrInvalidCredentials
	// without revealing which field was wrong.
	AdminLogin(ctx context.Context, email, password string) (string, error)
	// StudentLogin verifies a student credential and returns a session token.
	// Unknown email and wrong password are indistinguishable to the caller.
	StudentLogin(ctx context.Context, email, password string) (string, error)
	RegisterStudent(ctx context.Context, input RegisterStudentInput) (*domain.Student, error)
}
