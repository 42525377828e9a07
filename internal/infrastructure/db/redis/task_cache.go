package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campusworks/tasktrack/internal/core/domain"
)

const cacheTTL = 30 * time.Second

// TaskCache is a short-TTL read cache for per-student task lists, backed by
// Redis. Entries hold the persisted records; status derivation happens after
// every fetch, so a cached entry can never present a stale pending task.
// Key format: tasks:<student_id>
type TaskCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewTaskCache creates a TaskCache wrapping the given Redis client.
func NewTaskCache(client *redis.Client, log zerolog.Logger) *TaskCache {
	return &TaskCache{client: client, log: log}
}

// Get returns the cached task list for the student, if present. Any cache
// failure is treated as a miss.
func (c *TaskCache) Get(ctx context.Context, studentID string) ([]*domain.Task, bool) {
	raw, err := c.client.Get(ctx, c.key(studentID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("student_id", studentID).Msg("task cache read failed")
		}
		return nil, false
	}

	var tasks []*domain.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		c.log.Warn().Err(err).Str("student_id", studentID).Msg("task cache decode failed")
		return nil, false
	}
	return tasks, true
}

// Set stores the task list (expires after cacheTTL). Failures are logged only.
func (c *TaskCache) Set(ctx context.Context, studentID string, tasks []*domain.Task) {
	raw, err := json.Marshal(tasks)
	if err != nil {
		c.log.Warn().Err(err).Str("student_id", studentID).Msg("task cache encode failed")
		return
	}
	if err := c.client.Set(ctx, c.key(studentID), raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("student_id", studentID).Msg("task cache write failed")
	}
}

// Invalidate drops the student's cached list after a write.
func (c *TaskCache) Invalidate(ctx context.Context, studentID string) {
	if err := c.client.Del(ctx, c.key(studentID)).Err(); err != nil {
		c.log.Warn().Err(err).Str("student_id", studentID).Msg("task cache invalidation failed")
	}
}

func (c *TaskCache) key(studentID string) string {
	return "tasks:" + studentID
}
