// Package sweep converges persisted task statuses with the due-date
// derivation. Reads always derive overdue on their own; the sweep only keeps
// stored data from lagging indefinitely.
package sweep

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusworks/tasktrack/internal/api/metrics"
)

const defaultInterval = time.Minute

// TaskMarker is the narrow repository slice the sweeper needs.
type TaskMarker interface {
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

// Sweeper periodically persists pending -> overdue for past-due tasks.
type Sweeper struct {
	tasks    TaskMarker
	interval time.Duration
	log      zerolog.Logger
}

// NewSweeper creates a Sweeper. If interval <= 0, defaultInterval is used.
func NewSweeper(tasks TaskMarker, interval time.Duration, log zerolog.Logger) *Sweeper {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Sweeper{tasks: tasks, interval: interval, log: log}
}

// Start launches the sweep loop. It stops when ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	n, err := s.tasks.MarkOverdue(ctx, time.Now().UTC())
	if err != nil {
		s.log.Error().Err(err).Msg("overdue sweep failed")
		return
	}
	if n > 0 {
		metrics.TasksSweptOverdueTotal.Add(float64(n))
		s.log.Info().Int64("tasks", n).Msg("tasks marked overdue")
	}
}
