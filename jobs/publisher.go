package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"wep_bot/session"
)

// TaskCompletion is the task type emitted when a user finishes the questionnaire.
const TaskCompletion = "questionnaire.completed"

// DefaultQueue is the Redis list tasks are pushed to.
const DefaultQueue = "queue:completions"

// Task is a queue entry.
type Task struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Completion describes a finished questionnaire.
type Completion struct {
	UserID      string          `json:"user_id"`
	Answers     session.Answers `json:"answers"`
	Recommended []string        `json:"recommended"`
	CompletedAt string          `json:"completed_at"`
}

// NewCompletionTask wraps c in a Task.
func NewCompletionTask(c Completion) Task {
	data, _ := json.Marshal(c) // plain strings, cannot fail
	return Task{Type: TaskCompletion, Data: data}
}

// Publisher sends tasks to the background queue.
type Publisher interface {
	Publish(ctx context.Context, task Task) error
}

// NopPublisher drops every task. Used when no queue is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Task) error { return nil }

// RedisPublisher pushes tasks onto a Redis list.
type RedisPublisher struct {
	rdb   *redis.Client
	queue string
}

func NewRedisPublisher(rdb *redis.Client, queue string) *RedisPublisher {
	if queue == "" {
		queue = DefaultQueue
	}
	return &RedisPublisher{rdb: rdb, queue: queue}
}

// Publish sends the task to the queue.
func (p *RedisPublisher) Publish(ctx context.Context, task Task) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}

	if err := p.rdb.LPush(ctx, p.queue, payload).Err(); err != nil {
		return fmt.Errorf("push to %s: %w", p.queue, err)
	}
	return nil
}
