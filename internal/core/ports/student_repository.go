package ports

import (
	"context"

	"github.com/campusworks/tasktrack/internal/core/domain"
)

// StudentRepository defines the narrow persistence contract for students.
type StudentRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Student, error)
	FindByID(ctx context.Context, id string) (*domain.Student, error)
	// Create persists a new student. A duplicate email is reported as
	// domain.ErrDuplicateStudent, never silently overwritten.
	Create(ctx context.Context, student *domain.Student) (*domain.Student, error)
}
