package ports

import (
	"context"
	"time"

	"github.com/campusworks/tasktrack/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// ListByStudent returns all tasks owned by the student in insertion order.
	ListByStudent(ctx context.Context, studentID string) ([]*domain.Task, error)
	// UpdateStatus conditionally sets the task status in a single write. The
	// record must still be owned by studentID and its persisted status must be
	// one of from; matched reports whether any record satisfied the condition.
	UpdateStatus(ctx context.Context, taskID, studentID string, from []domain.TaskStatus, to domain.TaskStatus) (matched bool, err error)
	// MarkOverdue persists overdue for every pending task whose due date has
	// passed, returning the number of records updated.
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}
