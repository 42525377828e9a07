package ports

import (
	"context"
	"time"

	"github.com/campusworks/tasktrack/internal/core/domain"
)

// AssignTaskInput carries the data needed to assign a task to a student.
type AssignTaskInput struct {
	StudentID string
	Name      string
	DueDate   time.Time
}

// TaskService owns the task lifecycle.
type TaskService interface {
	// Assign creates a pending task for an existing student; an unknown
	// student fails with domain.ErrStudentNotFound.
	Assign(ctx context.Context, input AssignTaskInput) (*domain.Task, error)
	// UpdateStatus applies a requester-initiated transition. It fails with
	// domain.ErrTaskNotFound, domain.ErrForbidden when the requester does not
	// own the task, or domain.ErrInvalidTransition per the state machine.
	UpdateStatus(ctx context.Context, taskID, requesterID string, target domain.TaskStatus) (*domain.Task, error)
	// ListForStudent returns the student's tasks in insertion order with the
	// due-date derivation applied.
	ListForStudent(ctx context.Context, studentID string) ([]*domain.Task, error)
}
