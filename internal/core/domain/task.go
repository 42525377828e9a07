package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusOverdue   TaskStatus = "overdue"
	StatusCompleted TaskStatus = "completed"
)

// validTransitions defines the transitions a student may request.
// The pending -> overdue move is never requester-initiated; it is derived
// from the due date (see EffectiveStatus) and persisted by the sweep.
var validTransitions = map[TaskStatus][]TaskStatus{
	StatusPending: {StatusCompleted},
	StatusOverdue: {StatusCompleted},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrTaskNotFound = errors.New("task not found")
var ErrForbidden = errors.New("access forbidden")

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusOverdue, StatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether a requested transition from s to next is valid.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionSources returns every status from which target is reachable by
// request. Used to build conditional writes that re-assert legality against
// the persisted record.
func TransitionSources(target TaskStatus) []TaskStatus {
	var sources []TaskStatus
	for from, nexts := range validTransitions {
		for _, next := range nexts {
			if next == target {
				sources = append(sources, from)
			}
		}
	}
	return sources
}

// Task is a unit of work assigned to a single student.
type Task struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	StudentID string     `json:"student_id" bson:"student_id"`
	Name      string     `json:"name" bson:"name"`
	DueDate   time.Time  `json:"due_date" bson:"due_date"`
	Status    TaskStatus `json:"status" bson:"status"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
}

// EffectiveStatus returns the status as it must be presented at time now:
// a stored pending task past its due date reads as overdue, regardless of
// whether the sweep has persisted the change yet.
func (t *Task) EffectiveStatus(now time.Time) TaskStatus {
	if t.Status == StatusPending && now.After(t.DueDate) {
		return StatusOverdue
	}
	return t.Status
}
