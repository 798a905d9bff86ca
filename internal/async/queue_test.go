package async

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	mu      sync.Mutex
	seen    []uuid.UUID
	started chan struct{} // signaled once per Run start, if set
	gate    chan struct{} // Run blocks on this until closed, if set
	err     error
}

func (r *countingRunner) Run(_ context.Context, documentID uuid.UUID) (uuid.UUID, error) {
	if r.started != nil {
		r.started <- struct{}{}
	}
	if r.gate != nil {
		<-r.gate
	}
	r.mu.Lock()
	r.seen = append(r.seen, documentID)
	r.mu.Unlock()
	if r.err != nil {
		return uuid.Nil, r.err
	}
	return uuid.New(), nil
}

func (r *countingRunner) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}

func queueLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestQueueProcessesAllJobs(t *testing.T) {
	runner := &countingRunner{}
	q := NewProcessorQueue(runner, queueLogger(), WithWorkers(3), WithQueueSize(16))

	for i := 0; i < 10; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, 10, runner.count())
}

func TestQueueBackpressure(t *testing.T) {
	runner := &countingRunner{
		started: make(chan struct{}, 4),
		gate:    make(chan struct{}),
	}
	q := NewProcessorQueue(runner, queueLogger(), WithWorkers(1), WithQueueSize(1))

	// First job is picked up by the single worker and blocks on the gate.
	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	<-runner.started

	// Second job fills the buffer; third has nowhere to go.
	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()})
	assert.ErrorIs(t, err, ErrQueueFull)

	close(runner.gate)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)
	assert.Equal(t, 2, runner.count())
}

func TestQueueEnqueueAfterShutdown(t *testing.T) {
	q := NewProcessorQueue(&countingRunner{}, queueLogger(), WithWorkers(1))
	q.Shutdown(context.Background())

	err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()})
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestQueueShutdownIdempotent(t *testing.T) {
	q := NewProcessorQueue(&countingRunner{}, queueLogger(), WithWorkers(1))
	q.Shutdown(context.Background())
	q.Shutdown(context.Background()) // second call must not panic
}

func TestQueueEnqueueCancelledContext(t *testing.T) {
	q := NewProcessorQueue(&countingRunner{}, queueLogger(), WithWorkers(1))
	defer q.Shutdown(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := q.Enqueue(ctx, Job{DocumentID: uuid.New()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQueueRunnerErrorsDontStopWorkers(t *testing.T) {
	runner := &countingRunner{err: errors.New("pipeline exploded")}
	q := NewProcessorQueue(runner, queueLogger(), WithWorkers(2), WithQueueSize(8))

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, 5, runner.count())
}
