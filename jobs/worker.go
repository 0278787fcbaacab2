package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Handler processes one task taken off the queue.
type Handler func(ctx context.Context, task Task) error

// Worker drains a Redis list and hands each task to a Handler.
type Worker struct {
	rdb     *redis.Client
	queue   string
	handler Handler
	log     *zap.Logger

	// pollTimeout bounds each BRPOP so cancellation is noticed.
	pollTimeout time.Duration
}

func NewWorker(rdb *redis.Client, queue string, handler Handler, log *zap.Logger) *Worker {
	if queue == "" {
		queue = DefaultQueue
	}
	return &Worker{
		rdb:         rdb,
		queue:       queue,
		handler:     handler,
		log:         log,
		pollTimeout: 5 * time.Second,
	}
}

// LogCompletions returns a Handler that records completion tasks in the log.
func LogCompletions(log *zap.Logger) Handler {
	return func(_ context.Context, task Task) error {
		if task.Type != TaskCompletion {
			log.Warn("unknown task type", zap.String("type", task.Type))
			return nil
		}
		var c Completion
		if err := json.Unmarshal(task.Data, &c); err != nil {
			return err
		}
		log.Info("✅ questionnaire completed",
			zap.String("user_id", c.UserID),
			zap.Any("answers", c.Answers),
			zap.Strings("recommended", c.Recommended),
			zap.String("completed_at", c.CompletedAt),
		)
		return nil
	}
}

// Run blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	w.log.Info("🛠 worker started", zap.String("queue", w.queue))
	for {
		if ctx.Err() != nil {
			w.log.Info("worker stopped")
			return
		}
		if _, err := w.ProcessOne(ctx); err != nil && ctx.Err() == nil {
			w.log.Error("process task failed", zap.Error(err))
			time.Sleep(time.Second)
		}
	}
}

// ProcessOne waits up to pollTimeout for a task and handles it.
// It reports whether a task was taken.
func (w *Worker) ProcessOne(ctx context.Context) (bool, error) {
	res, err := w.rdb.BRPop(ctx, w.pollTimeout, w.queue).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var task Task
	if err := json.Unmarshal([]byte(res[1]), &task); err != nil {
		w.log.Warn("dropping malformed task", zap.Error(err))
		return true, nil
	}
	return true, w.handler(ctx, task)
}
