package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/inkspect/docverify/gen/ent"
	v1 "github.com/inkspect/docverify/gen/proto/docverify/v1"
	"github.com/inkspect/docverify/internal/async"
	"github.com/inkspect/docverify/internal/common"
	"github.com/inkspect/docverify/internal/ingest"
	"github.com/inkspect/docverify/internal/repository"
	"github.com/inkspect/docverify/internal/utils"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type VerificationService struct {
	v1.UnimplementedVerificationServiceServer
	ingestor  ingest.Ingestor
	processor async.Runner
	queue     async.Queue
	jobs      repository.VerificationJobRepository
	logger    *slog.Logger
}

func NewVerificationService(ing ingest.Ingestor, proc async.Runner, queue async.Queue, jobs repository.VerificationJobRepository, logger *slog.Logger) *VerificationService {
	return &VerificationService{
		ingestor:  ing,
		processor: proc,
		queue:     queue,
		jobs:      jobs,
		logger:    logger,
	}
}

// SubmitDocument implements v1.VerificationServiceServer
func (s *VerificationService) SubmitDocument(ctx context.Context, req *v1.SubmitDocumentRequest) (*v1.SubmitDocumentResponse, error) {
	// Validate input using common validation
	validator := common.NewValidator()
	validator.Field("path", req.GetPath(), common.Required)
	if err := common.ValidateAndReturnError(validator); err != nil {
		s.logger.Error("submit request rejected", "error", err)
		return nil, err
	}
	path := strings.TrimSpace(req.GetPath())

	s.logger.Info("starting document ingest", "path", path)
	r, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest: %v", err)
	}
	s.logger.Info("document ingest succeeded", "document_id", r.DocumentID, "deduplicated", r.Deduplicated)

	resp := &v1.SubmitDocumentResponse{
		DocumentId:     r.DocumentID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
	}

	docUUID, err := uuid.Parse(r.DocumentID)
	if err != nil {
		return nil, common.InternalErrorf("ingest returned malformed document id %q", r.DocumentID)
	}

	if req.GetAsync() {
		err := s.queue.Enqueue(ctx, async.Job{DocumentID: docUUID, SubmittedAt: time.Now()})
		switch {
		case err == nil:
			resp.Queued = true
			return resp, nil
		case errors.Is(err, async.ErrQueueFull):
			return nil, status.Error(codes.ResourceExhausted, "verification queue is full")
		case errors.Is(err, async.ErrQueueClosed):
			return nil, status.Error(codes.Unavailable, "verification queue is shut down")
		default:
			return nil, common.InternalErrorf("enqueue: %v", err)
		}
	}

	s.logger.Info("starting document verification", "document_id", r.DocumentID)
	jobID, err := s.processor.Run(ctx, docUUID)
	if err != nil {
		s.logger.Error("verification.failed", "document_id", r.DocumentID, "err", err)
		resp.Error = err.Error()
	}
	if jobID != uuid.Nil {
		resp.JobId = jobID.String()
	}
	return resp, nil
}

// GetVerification implements v1.VerificationServiceServer
func (s *VerificationService) GetVerification(ctx context.Context, req *v1.GetVerificationRequest) (*v1.GetVerificationResponse, error) {
	jobID := strings.TrimSpace(req.GetJobId())
	docID := strings.TrimSpace(req.GetDocumentId())

	var (
		job *ent.VerificationJob
		err error
	)
	switch {
	case jobID != "" && docID != "":
		return nil, common.InvalidArgumentError("set either job_id or document_id, not both")
	case jobID != "":
		id, perr := uuid.Parse(jobID)
		if perr != nil {
			return nil, common.InvalidArgumentError("job_id must be a UUID")
		}
		job, err = s.jobs.GetByID(ctx, id)
	case docID != "":
		id, perr := uuid.Parse(docID)
		if perr != nil {
			return nil, common.InvalidArgumentError("document_id must be a UUID")
		}
		job, err = s.jobs.GetLatestByDocument(ctx, id)
	default:
		return nil, common.InvalidArgumentError("job_id or document_id is required")
	}

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("verification not found")
		}
		s.logger.Error("get verification failed", "job_id", jobID, "document_id", docID, "error", err)
		return nil, common.InternalError("get verification failed")
	}

	return &v1.GetVerificationResponse{
		Verification: utils.ToPBVerification(utils.ToVerification(job)),
	}, nil
}

// ListVerifications implements v1.VerificationServiceServer
func (s *VerificationService) ListVerifications(ctx context.Context, req *v1.ListVerificationsRequest) (*v1.ListVerificationsResponse, error) {
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		// inclusive upper bound: push to the end of that day
		end := t.Add(24*time.Hour - time.Second)
		toPtr = &end
	}

	rows, err := s.jobs.ListByWindow(ctx, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("list verifications failed", "error", err)
		return nil, common.InternalError("list verifications failed")
	}

	out := make([]*v1.Verification, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToPBVerification(utils.ToVerification(row)))
	}
	return &v1.ListVerificationsResponse{Verifications: out}, nil
}
