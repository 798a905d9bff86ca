// Package async runs verification work on an in-process worker pool.
package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit. Extend as needed later (trace, retry, priority).
type Job struct {
	DocumentID  uuid.UUID
	Force       bool // enqueue even if the document was deduplicated
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Runner is the processing side the queue drives. *analysis.Processor
// satisfies it.
type Runner interface {
	Run(ctx context.Context, documentID uuid.UUID) (uuid.UUID, error)
}
