package jobs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wep_bot/session"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestRedisPublisherPushesJSON(t *testing.T) {
	mr, rdb := newRedis(t)
	p := NewRedisPublisher(rdb, "")

	task := NewCompletionTask(Completion{
		UserID:      "whatsapp:+911",
		Answers:     session.Answers{Sector: "1", Age: "2", Registered: "no", Assistance: "3"},
		Recommended: []string{"PMEGP"},
		CompletedAt: "2024-05-01T10:00:00Z",
	})
	require.NoError(t, p.Publish(context.Background(), task))

	items, err := mr.List(DefaultQueue)
	require.NoError(t, err)
	require.Len(t, items, 1)

	var got Task
	require.NoError(t, json.Unmarshal([]byte(items[0]), &got))
	assert.Equal(t, TaskCompletion, got.Type)

	var c Completion
	require.NoError(t, json.Unmarshal(got.Data, &c))
	assert.Equal(t, "whatsapp:+911", c.UserID)
	assert.Equal(t, "3", c.Answers.Assistance)
	assert.Equal(t, []string{"PMEGP"}, c.Recommended)
}

func TestWorkerProcessOne(t *testing.T) {
	_, rdb := newRedis(t)
	ctx := context.Background()

	var handled []Task
	w := NewWorker(rdb, "q", func(_ context.Context, task Task) error {
		handled = append(handled, task)
		return nil
	}, zap.NewNop())

	p := NewRedisPublisher(rdb, "q")
	require.NoError(t, p.Publish(ctx, NewCompletionTask(Completion{UserID: "a"})))
	require.NoError(t, p.Publish(ctx, NewCompletionTask(Completion{UserID: "b"})))

	for i := 0; i < 2; i++ {
		took, err := w.ProcessOne(ctx)
		require.NoError(t, err)
		assert.True(t, took)
	}

	require.Len(t, handled, 2)
	var first Completion
	require.NoError(t, json.Unmarshal(handled[0].Data, &first))
	assert.Equal(t, "a", first.UserID, "tasks are handled in publish order")
}

func TestWorkerDropsMalformedTask(t *testing.T) {
	_, rdb := newRedis(t)
	ctx := context.Background()
	require.NoError(t, rdb.LPush(ctx, "q", "not json").Err())

	called := false
	w := NewWorker(rdb, "q", func(context.Context, Task) error {
		called = true
		return nil
	}, zap.NewNop())

	took, err := w.ProcessOne(ctx)
	require.NoError(t, err)
	assert.True(t, took)
	assert.False(t, called)
}

func TestLogCompletions(t *testing.T) {
	h := LogCompletions(zap.NewNop())

	assert.NoError(t, h(context.Background(), NewCompletionTask(Completion{UserID: "a"})))
	assert.NoError(t, h(context.Background(), Task{Type: "other"}))
	assert.Error(t, h(context.Background(), Task{Type: TaskCompletion, Data: json.RawMessage(`"x"`)}))
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), Task{}))
}
