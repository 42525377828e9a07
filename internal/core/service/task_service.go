package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusworks/tasktrack/internal/api/metrics"
	"github.com/campusworks/tasktrack/internal/core/domain"
	"github.com/campusworks/tasktrack/internal/core/ports"
)

// TaskCache abstracts the task-list read cache (Redis). A nil cache is valid;
// cache failures never fail the request.
type TaskCache interface {
	Get(ctx context.Context, studentID string) ([]*domain.Task, bool)
	Set(ctx context.Context, studentID string, tasks []*domain.Task)
	Invalidate(ctx context.Context, studentID string)
}

// TaskService owns task records and enforces the status state machine.
type TaskService struct {
	tasks    ports.TaskRepository
	students ports.StudentRepository
	cache    TaskCache
	log      zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, students ports.StudentRepository, cache TaskCache, log zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, students: students, cache: cache, log: log}
}

// Assign creates a pending task after checking the owner exists.
func (s *TaskService) Assign(ctx context.Context, input ports.AssignTaskInput) (*domain.Task, error) {
	if _, err := s.students.FindByID(ctx, input.StudentID); err != nil {
		return nil, err
	}

	task := &domain.Task{
		StudentID: input.StudentID,
		Name:      input.Name,
		DueDate:   input.DueDate.UTC(),
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		s.log.Error().Err(err).Str("student_id", input.StudentID).Msg("failed to create task")
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, input.StudentID)
	}

	metrics.TasksAssignedTotal.Inc()
	s.log.Info().Str("task_id", created.ID).Str("student_id", created.StudentID).Msg("task assigned")
	return created, nil
}

// UpdateStatus applies a requester-initiated transition. Ownership and
// transition legality are validated on a fresh read and then re-asserted by
// the conditional write itself, so a concurrent update cannot slip an illegal
// transition through.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID, requesterID string, target domain.TaskStatus) (*domain.Task, error) {
	task, err := s.validateUpdate(ctx, taskID, requesterID, target)
	if err != nil {
		return nil, err
	}

	sources := domain.TransitionSources(target)
	matched, err := s.tasks.UpdateStatus(ctx, taskID, requesterID, sources, target)
	if err != nil {
		return nil, err
	}
	if !matched {
		// Lost a race: the persisted state changed between read and write.
		// Re-read and report the failure against the current state.
		metrics.TransitionsRejectedTotal.WithLabelValues("conflict").Inc()
		if _, err := s.validateUpdate(ctx, taskID, requesterID, target); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: task %s changed concurrently", domain.ErrInvalidTransition, taskID)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, requesterID)
	}

	from := task.EffectiveStatus(time.Now().UTC())
	metrics.TaskTransitionsTotal.WithLabelValues(string(from), string(target)).Inc()
	s.log.Info().
		Str("task_id", taskID).
		Str("from", string(from)).
		Str("to", string(target)).
		Msg("task status updated")

	updated := *task
	updated.Status = target
	return &updated, nil
}

// validateUpdate checks existence, ownership, and transition legality against
// the effective (derived) status.
func (s *TaskService) validateUpdate(ctx context.Context, taskID, requesterID string, target domain.TaskStatus) (*domain.Task, error) {
	if !target.Valid() || len(domain.TransitionSources(target)) == 0 {
		metrics.TransitionsRejectedTotal.WithLabelValues("invalid_transition").Inc()
		return nil, fmt.Errorf("%w: %q is not a requestable status", domain.ErrInvalidTransition, target)
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		metrics.TransitionsRejectedTotal.WithLabelValues("not_found").Inc()
		return nil, err
	}
	if task.StudentID != requesterID {
		metrics.TransitionsRejectedTotal.WithLabelValues("forbidden").Inc()
		return nil, domain.ErrForbidden
	}

	current := task.EffectiveStatus(time.Now().UTC())
	if !current.CanTransitionTo(target) {
		metrics.TransitionsRejectedTotal.WithLabelValues("invalid_transition").Inc()
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, current, target)
	}
	return task, nil
}

// ListForStudent returns the student's tasks with the due-date derivation
// applied after every fetch, so a cached or stale pending task past its due
// date still reads as overdue.
func (s *TaskService) ListForStudent(ctx context.Context, studentID string) ([]*domain.Task, error) {
	if s.cache != nil {
		if tasks, ok := s.cache.Get(ctx, studentID); ok {
			return derive(tasks), nil
		}
	}

	tasks, err := s.tasks.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, studentID, tasks)
	}
	return derive(tasks), nil
}

func derive(tasks []*domain.Task) []*domain.Task {
	now := time.Now().UTC()
	out := make([]*domain.Task, len(tasks))
	for i, t := range tasks {
		clone := *t
		clone.Status = t.EffectiveStatus(now)
		out[i] = &clone
	}
	return out
}
