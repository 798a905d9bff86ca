package server

import (
	"context"
	"io"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/inkspect/docverify/gen/ent"
	v1 "github.com/inkspect/docverify/gen/proto/docverify/v1"
	"github.com/inkspect/docverify/internal/async"
	"github.com/inkspect/docverify/internal/ingest"
	"github.com/inkspect/docverify/internal/repository"
)

type fakeIngestor struct {
	result ingest.IngestionResult
	err    error
	got    string
}

func (f *fakeIngestor) IngestPath(_ context.Context, path string) (ingest.IngestionResult, error) {
	f.got = path
	return f.result, f.err
}

func (f *fakeIngestor) IngestDirectory(context.Context, string, bool) ([]ingest.IngestionResult, ingest.DirStats, error) {
	return nil, ingest.DirStats{}, nil
}

type fakeRunner struct {
	jobID uuid.UUID
	err   error
	got   []uuid.UUID
}

func (f *fakeRunner) Run(_ context.Context, documentID uuid.UUID) (uuid.UUID, error) {
	f.got = append(f.got, documentID)
	return f.jobID, f.err
}

type fakeQueue struct {
	err  error
	jobs []async.Job
}

func (f *fakeQueue) Enqueue(_ context.Context, job async.Job) error {
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeQueue) Shutdown(context.Context) {}

type fakeJobs struct {
	byID     map[uuid.UUID]*ent.VerificationJob
	latest   map[uuid.UUID]*ent.VerificationJob
	rows     []*ent.VerificationJob
	gotFrom  *time.Time
	gotTo    *time.Time
	queryErr error
}

func (f *fakeJobs) Start(context.Context, uuid.UUID, string) (*ent.VerificationJob, error) {
	return nil, nil
}

func (f *fakeJobs) SaveOCR(context.Context, uuid.UUID, repository.OCROutcome) error { return nil }

func (f *fakeJobs) FinishAnalysis(context.Context, uuid.UUID, repository.AnalysisOutcome) error {
	return nil
}

func (f *fakeJobs) FinishFailure(context.Context, uuid.UUID, string) error { return nil }

func (f *fakeJobs) GetByID(_ context.Context, jobID uuid.UUID) (*ent.VerificationJob, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	job, ok := f.byID[jobID]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	return job, nil
}

func (f *fakeJobs) GetWithDocument(context.Context, uuid.UUID) (*ent.VerificationJob, *ent.Document, error) {
	return nil, nil, nil
}

func (f *fakeJobs) GetLatestByDocument(_ context.Context, documentID uuid.UUID) (*ent.VerificationJob, error) {
	job, ok := f.latest[documentID]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	return job, nil
}

func (f *fakeJobs) ListByWindow(_ context.Context, from, to *time.Time) ([]*ent.VerificationJob, error) {
	f.gotFrom, f.gotTo = from, to
	return f.rows, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(ing *fakeIngestor, run *fakeRunner, q *fakeQueue, jobs *fakeJobs) *VerificationService {
	return NewVerificationService(ing, run, q, jobs, testLogger())
}

func ingestedResult(docID uuid.UUID) ingest.IngestionResult {
	return ingest.IngestionResult{
		SourcePath:   "/in/certificate.txt",
		DocumentID:   docID.String(),
		HashHex:      "ab12",
		FileExt:      ".txt",
		FileSize:     64,
		UploadedAt:   time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC),
		Deduplicated: true,
	}
}

func TestSubmitDocumentRequiresPath(t *testing.T) {
	svc := newService(&fakeIngestor{}, &fakeRunner{}, &fakeQueue{}, &fakeJobs{})

	_, err := svc.SubmitDocument(context.Background(), &v1.SubmitDocumentRequest{Path: "   "})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestSubmitDocumentSync(t *testing.T) {
	docID := uuid.New()
	jobID := uuid.New()
	ing := &fakeIngestor{result: ingestedResult(docID)}
	run := &fakeRunner{jobID: jobID}
	q := &fakeQueue{}

	svc := newService(ing, run, q, &fakeJobs{})
	resp, err := svc.SubmitDocument(context.Background(), &v1.SubmitDocumentRequest{Path: "/in/certificate.txt"})
	require.NoError(t, err)

	assert.Equal(t, "/in/certificate.txt", ing.got)
	assert.Equal(t, docID.String(), resp.GetDocumentId())
	assert.Equal(t, jobID.String(), resp.GetJobId())
	assert.True(t, resp.GetDeduplicated())
	assert.Equal(t, "ab12", resp.GetContentHashHex())
	assert.Equal(t, "2025-06-01T10:00:00Z", resp.GetUploadedAt())
	assert.False(t, resp.GetQueued())
	assert.Empty(t, resp.GetError())
	require.Len(t, run.got, 1)
	assert.Equal(t, docID, run.got[0])
	assert.Empty(t, q.jobs)
}

func TestSubmitDocumentAsync(t *testing.T) {
	docID := uuid.New()
	run := &fakeRunner{}
	q := &fakeQueue{}

	svc := newService(&fakeIngestor{result: ingestedResult(docID)}, run, q, &fakeJobs{})
	resp, err := svc.SubmitDocument(context.Background(), &v1.SubmitDocumentRequest{Path: "/in/certificate.txt", Async: true})
	require.NoError(t, err)

	assert.True(t, resp.GetQueued())
	assert.Empty(t, resp.GetJobId())
	assert.Empty(t, run.got)
	require.Len(t, q.jobs, 1)
	assert.Equal(t, docID, q.jobs[0].DocumentID)
}

func TestSubmitDocumentQueueFull(t *testing.T) {
	docID := uuid.New()
	q := &fakeQueue{err: async.ErrQueueFull}

	svc := newService(&fakeIngestor{result: ingestedResult(docID)}, &fakeRunner{}, q, &fakeJobs{})
	_, err := svc.SubmitDocument(context.Background(), &v1.SubmitDocumentRequest{Path: "/in/certificate.txt", Async: true})
	require.Error(t, err)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestSubmitDocumentVerificationFailureStillRegisters(t *testing.T) {
	docID := uuid.New()
	run := &fakeRunner{err: assert.AnError}

	svc := newService(&fakeIngestor{result: ingestedResult(docID)}, run, &fakeQueue{}, &fakeJobs{})
	resp, err := svc.SubmitDocument(context.Background(), &v1.SubmitDocumentRequest{Path: "/in/certificate.txt"})
	require.NoError(t, err)

	assert.Equal(t, docID.String(), resp.GetDocumentId())
	assert.NotEmpty(t, resp.GetError())
}

func TestSubmitDocumentIngestError(t *testing.T) {
	svc := newService(&fakeIngestor{err: assert.AnError}, &fakeRunner{}, &fakeQueue{}, &fakeJobs{})

	_, err := svc.SubmitDocument(context.Background(), &v1.SubmitDocumentRequest{Path: "/in/missing.txt"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetVerificationByJobID(t *testing.T) {
	jobID := uuid.New()
	docID := uuid.New()
	jobs := &fakeJobs{byID: map[uuid.UUID]*ent.VerificationJob{
		jobID: {
			ID:         jobID,
			DocumentID: docID,
			Format:     "TXT",
			Status:     "ANALYZED",
			StartedAt:  time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC),
		},
	}}

	svc := newService(&fakeIngestor{}, &fakeRunner{}, &fakeQueue{}, jobs)
	resp, err := svc.GetVerification(context.Background(), &v1.GetVerificationRequest{JobId: jobID.String()})
	require.NoError(t, err)

	v := resp.GetVerification()
	require.NotNil(t, v)
	assert.Equal(t, jobID.String(), v.GetId())
	assert.Equal(t, docID.String(), v.GetDocumentId())
	assert.Equal(t, "ANALYZED", v.GetStatus())
}

func TestGetVerificationLatestByDocument(t *testing.T) {
	jobID := uuid.New()
	docID := uuid.New()
	jobs := &fakeJobs{latest: map[uuid.UUID]*ent.VerificationJob{
		docID: {ID: jobID, DocumentID: docID, Format: "TXT", Status: "FAILED", StartedAt: time.Now()},
	}}

	svc := newService(&fakeIngestor{}, &fakeRunner{}, &fakeQueue{}, jobs)
	resp, err := svc.GetVerification(context.Background(), &v1.GetVerificationRequest{DocumentId: docID.String()})
	require.NoError(t, err)
	assert.Equal(t, jobID.String(), resp.GetVerification().GetId())
}

func TestGetVerificationValidation(t *testing.T) {
	svc := newService(&fakeIngestor{}, &fakeRunner{}, &fakeQueue{}, &fakeJobs{})
	ctx := context.Background()

	_, err := svc.GetVerification(ctx, &v1.GetVerificationRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.GetVerification(ctx, &v1.GetVerificationRequest{JobId: uuid.NewString(), DocumentId: uuid.NewString()})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.GetVerification(ctx, &v1.GetVerificationRequest{JobId: "not-a-uuid"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetVerificationNotFound(t *testing.T) {
	svc := newService(&fakeIngestor{}, &fakeRunner{}, &fakeQueue{}, &fakeJobs{})

	_, err := svc.GetVerification(context.Background(), &v1.GetVerificationRequest{JobId: uuid.NewString()})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestListVerificationsWindow(t *testing.T) {
	jobID := uuid.New()
	jobs := &fakeJobs{rows: []*ent.VerificationJob{
		{ID: jobID, DocumentID: uuid.New(), Format: "TXT", Status: "ANALYZED", StartedAt: time.Now()},
	}}

	svc := newService(&fakeIngestor{}, &fakeRunner{}, &fakeQueue{}, jobs)
	resp, err := svc.ListVerifications(context.Background(), &v1.ListVerificationsRequest{
		FromDate: "2025-06-01",
		ToDate:   "2025-06-30",
	})
	require.NoError(t, err)

	require.NotNil(t, jobs.gotFrom)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), *jobs.gotFrom)
	require.NotNil(t, jobs.gotTo)
	assert.Equal(t, time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC), *jobs.gotTo)
	require.Len(t, resp.GetVerifications(), 1)
	assert.Equal(t, jobID.String(), resp.GetVerifications()[0].GetId())
}

func TestListVerificationsBadDate(t *testing.T) {
	svc := newService(&fakeIngestor{}, &fakeRunner{}, &fakeQueue{}, &fakeJobs{})

	_, err := svc.ListVerifications(context.Background(), &v1.ListVerificationsRequest{FromDate: "01/06/2025"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestExportVerificationsBadDate(t *testing.T) {
	srv := NewExportServer(nil, testLogger())

	_, err := srv.ExportVerifications(context.Background(), &v1.ExportVerificationsRequest{FromDate: "June 1"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
