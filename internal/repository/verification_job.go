package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/inkspect/docverify/constants"
	"github.com/inkspect/docverify/gen/ent"
	entjob "github.com/inkspect/docverify/gen/ent/verificationjob"
)

// OCROutcome is what the OCR stage persists on a job.
type OCROutcome struct {
	RegionTexts map[string]string
	Confidence  float32
	ModelName   string
	ModelParams map[string]any
}

// AnalysisOutcome is what the analysis stage persists on a job.
type AnalysisOutcome struct {
	DateFindings        json.RawMessage
	DateVerdict         string
	StampPresent        *bool
	StampConfidence     *float32
	SignaturePresent    *bool
	SignatureConfidence *float32
	OverallConfidence   float32
	NeedsReview         bool
}

type VerificationJobRepository interface {
	Start(ctx context.Context, documentID uuid.UUID, format string) (*ent.VerificationJob, error)
	SaveOCR(ctx context.Context, jobID uuid.UUID, out OCROutcome) error
	FinishAnalysis(ctx context.Context, jobID uuid.UUID, out AnalysisOutcome) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*ent.VerificationJob, error)
	GetWithDocument(ctx context.Context, jobID uuid.UUID) (*ent.VerificationJob, *ent.Document, error)
	GetLatestByDocument(ctx context.Context, documentID uuid.UUID) (*ent.VerificationJob, error)
	ListByWindow(ctx context.Context, from, to *time.Time) ([]*ent.VerificationJob, error)
}

type verificationJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewVerificationJobRepository(entc *ent.Client, log *slog.Logger) VerificationJobRepository {
	return &verificationJobRepo{ent: entc, log: log}
}

func (r *verificationJobRepo) Start(ctx context.Context, documentID uuid.UUID, format string) (*ent.VerificationJob, error) {
	job, err := r.ent.VerificationJob.
		Create().
		SetDocumentID(documentID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("verification_job start failed", "document_id", documentID, "err", err)
		return nil, err
	}
	r.log.Info("verification_job started", "job_id", job.ID, "document_id", documentID, "format", format)
	return job, nil
}

func (r *verificationJobRepo) SaveOCR(ctx context.Context, jobID uuid.UUID, out OCROutcome) error {
	var params []byte
	if out.ModelParams != nil {
		if b, err := json.Marshal(out.ModelParams); err == nil {
			params = b
		}
	}
	q := r.ent.VerificationJob.
		UpdateOneID(jobID).
		SetRegionTexts(out.RegionTexts).
		SetOcrConfidence(out.Confidence).
		SetStatus(string(constants.JobStatusOCROK))
	if out.ModelName != "" {
		q = q.SetModelName(out.ModelName)
	}
	if params != nil {
		q = q.SetModelParams(params)
	}
	if _, err := q.Save(ctx); err != nil {
		r.log.Error("verification_job save OCR failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("verification_job OCR saved", "job_id", jobID, "regions", len(out.RegionTexts), "confidence", out.Confidence)
	return nil
}

func (r *verificationJobRepo) FinishAnalysis(ctx context.Context, jobID uuid.UUID, out AnalysisOutcome) error {
	q := r.ent.VerificationJob.
		UpdateOneID(jobID).
		SetDateFindings(out.DateFindings).
		SetDateVerdict(out.DateVerdict).
		SetOverallConfidence(out.OverallConfidence).
		SetNeedsReview(out.NeedsReview).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusAnalyzed)).
		SetNillableStampPresent(out.StampPresent).
		SetNillableStampConfidence(out.StampConfidence).
		SetNillableSignaturePresent(out.SignaturePresent).
		SetNillableSignatureConfidence(out.SignatureConfidence)
	if _, err := q.Save(ctx); err != nil {
		r.log.Error("verification_job finish(ANALYZED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("verification_job finished (ANALYZED)",
		"job_id", jobID, "verdict", out.DateVerdict, "needs_review", out.NeedsReview)
	return nil
}

func (r *verificationJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.VerificationJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("verification_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("verification_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *verificationJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*ent.VerificationJob, error) {
	return r.ent.VerificationJob.Get(ctx, jobID)
}

func (r *verificationJobRepo) GetWithDocument(ctx context.Context, jobID uuid.UUID) (*ent.VerificationJob, *ent.Document, error) {
	job, err := r.ent.VerificationJob.Query().
		Where(entjob.ID(jobID)).
		WithDocument().
		Only(ctx)
	if err != nil {
		return nil, nil, err
	}
	return job, job.Edges.Document, nil
}

func (r *verificationJobRepo) GetLatestByDocument(ctx context.Context, documentID uuid.UUID) (*ent.VerificationJob, error) {
	return r.ent.VerificationJob.Query().
		Where(entjob.DocumentID(documentID)).
		Order(entjob.ByStartedAt(entsql.OrderDesc())).
		First(ctx)
}

func (r *verificationJobRepo) ListByWindow(ctx context.Context, from, to *time.Time) ([]*ent.VerificationJob, error) {
	q := r.ent.VerificationJob.Query()
	if from != nil {
		q = q.Where(entjob.StartedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(entjob.StartedAtLTE(*to))
	}
	rows, err := q.Order(entjob.ByStartedAt()).All(ctx)
	if err != nil {
		r.log.Error("failed to list verification jobs", "err", err)
		return nil, err
	}
	return rows, nil
}
