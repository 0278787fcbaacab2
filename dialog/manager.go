package dialog

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"wep_bot/catalog"
	"wep_bot/jobs"
	"wep_bot/session"
)

// DialogManager handles one inbound message and returns the single reply for it.
type DialogManager interface {
	HandleMessage(ctx context.Context, userID string, input string) (string, error)
}

// DefaultManager drives the Engine over a session.Store.
type DefaultManager struct {
	engine    *Engine
	store     session.Store
	locks     *session.Locker
	publisher jobs.Publisher
	log       *zap.Logger
}

// NewManager wires the engine to its store. A nil publisher disables completion events.
func NewManager(engine *Engine, store session.Store, publisher jobs.Publisher, log *zap.Logger) *DefaultManager {
	if publisher == nil {
		publisher = jobs.NopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DefaultManager{
		engine:    engine,
		store:     store,
		locks:     session.NewLocker(0),
		publisher: publisher,
		log:       log,
	}
}

// HandleMessage processes input for userID. Messages of one user are applied
// one at a time. On a store error the returned reply is still usable.
func (m *DefaultManager) HandleMessage(ctx context.Context, userID string, input string) (string, error) {
	unlock := m.locks.Lock(userID)
	defer unlock()

	log := m.log.With(zap.String("user_id", userID))

	current, found, err := m.store.Get(ctx, userID)
	if err != nil {
		log.Error("load session failed", zap.Error(err))
		return PromptUnavailable, fmt.Errorf("load session: %w", err)
	}

	var (
		next        session.Session
		reply       string
		recommended []catalog.Scheme
	)
	if !found {
		next, reply = m.engine.Start(userID)
		log.Info("📨 new session")
	} else {
		next, reply, recommended = m.engine.advance(current, input)
	}

	if err := m.store.Save(ctx, next); err != nil {
		log.Error("save session failed", zap.Error(err))
		return PromptUnavailable, fmt.Errorf("save session: %w", err)
	}
	if found && next.Step != current.Step {
		log.Info("session advanced",
			zap.String("from", string(current.Step)),
			zap.String("to", string(next.Step)),
		)
	}

	if found && next.Done() && !current.Done() {
		m.publishCompletion(ctx, next, recommended)
	}
	return reply, nil
}

func (m *DefaultManager) publishCompletion(ctx context.Context, s session.Session, recommended []catalog.Scheme) {
	names := make([]string, len(recommended))
	for i, r := range recommended {
		names[i] = r.SchemeName
	}

	task := jobs.NewCompletionTask(jobs.Completion{
		UserID:      s.UserID,
		Answers:     s.Answers,
		Recommended: names,
		CompletedAt: s.UpdatedAt.UTC().Format(time.RFC3339),
	})
	if err := m.publisher.Publish(ctx, task); err != nil {
		m.log.Warn("publish completion failed", zap.String("user_id", s.UserID), zap.Error(err))
	}
}
