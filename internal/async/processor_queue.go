package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/inkspect/docverify/internal/common"
)

var (
	ErrQueueFull   = errors.New("verification queue is full")
	ErrQueueClosed = errors.New("verification queue is shut down")
)

// ProcessorQueue fans jobs out to a fixed pool of workers, each running
// the verification pipeline with a per-job timeout. Enqueue never blocks;
// a full buffer surfaces as ErrQueueFull so callers can push back.
type ProcessorQueue struct {
	runner  Runner
	logger  *slog.Logger
	jobs    chan Job
	timeout time.Duration
	wg      sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

type options struct {
	workers   int
	queueSize int
	timeout   time.Duration
}

type Option func(*options)

func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.queueSize = n
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

func NewProcessorQueue(runner Runner, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	o := options{workers: 4, queueSize: 256, timeout: 3 * time.Minute}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		runner:  runner,
		logger:  logger,
		jobs:    make(chan Job, o.queueSize),
		timeout: o.timeout,
	}
	for i := 0; i < o.workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
	logger.Info("queue.started", "workers", o.workers, "queue_size", o.queueSize, "process_timeout", o.timeout)
	return q
}

func (q *ProcessorQueue) Enqueue(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	if job.TraceID == "" {
		job.TraceID = uuid.NewString()
	}

	// Send under the mutex so Shutdown cannot close the channel between
	// the closed check and the send.
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Shutdown stops intake and waits for in-flight and buffered jobs to
// drain, up to ctx's deadline.
func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		q.logger.Info("queue.shutdown.drained")
	case <-ctx.Done():
		q.logger.Warn("queue.shutdown.abandoned", "err", ctx.Err())
	}
}

func (q *ProcessorQueue) worker(id int) {
	defer q.wg.Done()
	for job := range q.jobs {
		q.process(id, job)
	}
}

func (q *ProcessorQueue) process(worker int, job Job) {
	ctx, cancel := common.WithTimeout(context.Background(), q.timeout)
	defer cancel()
	// Carry job identity in the context so pipeline stages can correlate logs.
	ctx = common.WithRequestID(ctx, job.TraceID)
	ctx = common.WithDocumentID(ctx, job.DocumentID.String())

	start := time.Now()
	jobID, err := q.runner.Run(ctx, job.DocumentID)
	if err != nil {
		q.logger.Error("queue.job.failed",
			"worker", worker,
			"document_id", job.DocumentID,
			"job_id", jobID,
			"trace_id", job.TraceID,
			"err", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return
	}
	q.logger.Info("queue.job.done",
		"worker", worker,
		"document_id", job.DocumentID,
		"job_id", jobID,
		"trace_id", job.TraceID,
		"wait_ms", start.Sub(job.SubmittedAt).Milliseconds(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
}
