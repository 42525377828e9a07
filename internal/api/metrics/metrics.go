// Package metrics defines and registers all custom Prometheus metrics for the
// task-tracking API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tasktrack"

// LoginsTotal counts login attempts.
// Labels:
//   - role: "admin" or "student"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// StudentsCreatedTotal counts students provisioned by the administrator.
var StudentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "students_created_total",
		Help:      "Total number of students added to the roster.",
	},
)

// TasksAssignedTotal counts tasks assigned to students.
var TasksAssignedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_assigned_total",
		Help:      "Total number of tasks assigned.",
	},
)

// TaskTransitionsTotal counts applied status transitions.
// Labels:
//   - from: the status the task left (e.g. "pending")
//   - to: the status applied (e.g. "completed")
var TaskTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_transitions_total",
		Help:      "Total number of task status transitions applied.",
	},
	[]string{"from", "to"},
)

// TransitionsRejectedTotal counts rejected status-update requests.
// Label:
//   - reason: "not_found", "forbidden", "invalid_transition", or "conflict"
var TransitionsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transitions_rejected_total",
		Help:      "Total number of task status updates rejected, by reason.",
	},
	[]string{"reason"},
)

// TasksSweptOverdueTotal counts tasks the background sweep moved to overdue.
var TasksSweptOverdueTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_swept_overdue_total",
		Help:      "Total number of pending tasks persisted as overdue by the sweep.",
	},
)
