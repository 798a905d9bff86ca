package analysis

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkspect/docverify/constants"
	"github.com/inkspect/docverify/gen/ent"
	"github.com/inkspect/docverify/internal/dateparse"
	"github.com/inkspect/docverify/internal/detect"
	"github.com/inkspect/docverify/internal/entity"
	"github.com/inkspect/docverify/internal/inference"
	"github.com/inkspect/docverify/internal/repository"
)

var errNotFound = errors.New("not found")

type fakeDocs struct {
	docs map[uuid.UUID]*ent.Document
}

func newFakeDocs(docs ...*ent.Document) *fakeDocs {
	f := &fakeDocs{docs: make(map[uuid.UUID]*ent.Document)}
	for _, d := range docs {
		f.docs[d.ID] = d
	}
	return f
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*ent.Document, error) {
	d, ok := f.docs[id]
	if !ok {
		return nil, errNotFound
	}
	return d, nil
}

func (f *fakeDocs) GetByHash(context.Context, []byte) (*ent.Document, error) {
	return nil, errNotFound
}

func (f *fakeDocs) Create(context.Context, string, string, string, int, []byte, time.Time) (*ent.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocs) UpsertByHash(context.Context, string, string, string, int, []byte, time.Time) (*ent.Document, bool, error) {
	return nil, false, errors.New("not implemented")
}

func (f *fakeDocs) List(context.Context, *time.Time, *time.Time) ([]*ent.Document, error) {
	return nil, nil
}

type fakeJobs struct {
	jobs     map[uuid.UUID]*ent.VerificationJob
	doc      *ent.Document
	ocr      map[uuid.UUID]repository.OCROutcome
	analysis map[uuid.UUID]repository.AnalysisOutcome
	failures map[uuid.UUID]string
}

func newFakeJobs(doc *ent.Document) *fakeJobs {
	return &fakeJobs{
		jobs:     make(map[uuid.UUID]*ent.VerificationJob),
		doc:      doc,
		ocr:      make(map[uuid.UUID]repository.OCROutcome),
		analysis: make(map[uuid.UUID]repository.AnalysisOutcome),
		failures: make(map[uuid.UUID]string),
	}
}

func (f *fakeJobs) Start(_ context.Context, documentID uuid.UUID, format string) (*ent.VerificationJob, error) {
	job := &ent.VerificationJob{
		ID:         uuid.New(),
		DocumentID: documentID,
		Format:     format,
		Status:     string(constants.JobStatusRunning),
		StartedAt:  time.Now(),
	}
	f.jobs[job.ID] = job
	return job, nil
}

func (f *fakeJobs) SaveOCR(_ context.Context, jobID uuid.UUID, out repository.OCROutcome) error {
	f.ocr[jobID] = out
	job := f.jobs[jobID]
	job.Status = string(constants.JobStatusOCROK)
	job.RegionTexts = out.RegionTexts
	conf := out.Confidence
	job.OcrConfidence = &conf
	return nil
}

func (f *fakeJobs) FinishAnalysis(_ context.Context, jobID uuid.UUID, out repository.AnalysisOutcome) error {
	f.analysis[jobID] = out
	f.jobs[jobID].Status = string(constants.JobStatusAnalyzed)
	return nil
}

func (f *fakeJobs) FinishFailure(_ context.Context, jobID uuid.UUID, message string) error {
	f.failures[jobID] = message
	f.jobs[jobID].Status = string(constants.JobStatusFailed)
	return nil
}

func (f *fakeJobs) GetByID(_ context.Context, jobID uuid.UUID) (*ent.VerificationJob, error) {
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, errNotFound
	}
	return job, nil
}

func (f *fakeJobs) GetWithDocument(ctx context.Context, jobID uuid.UUID) (*ent.VerificationJob, *ent.Document, error) {
	job, err := f.GetByID(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	return job, f.doc, nil
}

func (f *fakeJobs) GetLatestByDocument(context.Context, uuid.UUID) (*ent.VerificationJob, error) {
	return nil, errNotFound
}

func (f *fakeJobs) ListByWindow(context.Context, *time.Time, *time.Time) ([]*ent.VerificationJob, error) {
	return nil, nil
}

type stubRecognizer struct {
	texts       map[string]string // region -> canned text
	confidence  float32
	failRegions map[string]bool
}

func (s *stubRecognizer) RecognizeText(_ context.Context, req inference.RecognizeRequest) (inference.OCRResult, []byte, error) {
	if s.failRegions[req.Region] {
		return inference.OCRResult{}, nil, errors.New("recognition unavailable")
	}
	return inference.OCRResult{
		Text:       s.texts[req.Region],
		Region:     req.Region,
		Confidence: s.confidence,
	}, nil, nil
}

type stubDetector struct {
	present    map[detect.Target]bool
	confidence float32
	err        error
}

func (s *stubDetector) Detect(_ context.Context, req detect.DetectRequest) (detect.Detection, error) {
	if s.err != nil {
		return detect.Detection{}, s.err
	}
	return detect.Detection{Present: s.present[req.Target], Confidence: s.confidence}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testDoc() *ent.Document {
	return &ent.Document{
		ID:          uuid.New(),
		SourcePath:  "/in/scan.txt",
		ContentHash: []byte{0xAB, 0xCD},
		Filename:    "scan.txt",
		FileExt:     "txt",
		FileSize:    128,
		UploadedAt:  time.Now(),
	}
}

// pinnedTable anchors the age penalty so confidence scores are stable.
func pinnedTable() *dateparse.Table {
	return dateparse.New(dateparse.WithNow(func() time.Time {
		return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	}))
}

func TestOCRStageRun(t *testing.T) {
	doc := testDoc()
	docs := newFakeDocs(doc)
	jobs := newFakeJobs(doc)
	rec := &stubRecognizer{
		texts: map[string]string{
			"Header": "Issued 15/03/2024",
			"Body":   "Some narrative",
			"Footer": "Signed 16/03/2024",
		},
		confidence: 0.9,
	}
	stage := NewOCRStage(docs, jobs, rec, nil, testLogger())

	jobID, summary, err := stage.Run(context.Background(), doc.ID)
	require.NoError(t, err)

	job := jobs.jobs[jobID]
	require.NotNil(t, job)
	assert.Equal(t, constants.FormatText, job.Format)
	assert.Equal(t, string(constants.JobStatusOCROK), job.Status)

	out := jobs.ocr[jobID]
	assert.Len(t, out.RegionTexts, 3)
	assert.Equal(t, "Issued 15/03/2024", out.RegionTexts["Header"])
	assert.InDelta(t, 0.9, out.Confidence, 0.001)
	assert.Empty(t, summary.FailedRegions)
}

func TestOCRStagePartialFailure(t *testing.T) {
	doc := testDoc()
	jobs := newFakeJobs(doc)
	rec := &stubRecognizer{
		texts:       map[string]string{"Header": "h", "Footer": "f"},
		confidence:  0.8,
		failRegions: map[string]bool{"Body": true},
	}
	stage := NewOCRStage(newFakeDocs(doc), jobs, rec, nil, testLogger())

	jobID, summary, err := stage.Run(context.Background(), doc.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"Body"}, summary.FailedRegions)
	assert.Len(t, jobs.ocr[jobID].RegionTexts, 2)
	assert.Equal(t, string(constants.JobStatusOCROK), jobs.jobs[jobID].Status)
}

func TestOCRStageAllRegionsFail(t *testing.T) {
	doc := testDoc()
	jobs := newFakeJobs(doc)
	rec := &stubRecognizer{
		failRegions: map[string]bool{"Header": true, "Body": true, "Footer": true},
	}
	stage := NewOCRStage(newFakeDocs(doc), jobs, rec, nil, testLogger())

	jobID, _, err := stage.Run(context.Background(), doc.ID)
	require.Error(t, err)
	assert.Equal(t, string(constants.JobStatusFailed), jobs.jobs[jobID].Status)
	assert.NotEmpty(t, jobs.failures[jobID])
}

func TestOCRStageUnknownDocument(t *testing.T) {
	doc := testDoc()
	stage := NewOCRStage(newFakeDocs(), newFakeJobs(doc), &stubRecognizer{}, nil, testLogger())

	_, _, err := stage.Run(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, errNotFound)
}

// seedOCRJob plants a job already advanced to OCR_OK with the given region texts.
func seedOCRJob(jobs *fakeJobs, texts map[string]string, ocrConf float32) uuid.UUID {
	job := &ent.VerificationJob{
		ID:          uuid.New(),
		DocumentID:  jobs.doc.ID,
		Format:      constants.FormatText,
		Status:      string(constants.JobStatusOCROK),
		StartedAt:   time.Now(),
		RegionTexts: texts,
	}
	conf := ocrConf
	job.OcrConfidence = &conf
	jobs.jobs[job.ID] = job
	return job.ID
}

func newAnalyzeStage(jobs *fakeJobs, det detect.Detector) *AnalyzeStage {
	return NewAnalyzeStage(testLogger(), Config{}, jobs, pinnedTable(), det)
}

func TestAnalyzeStageConsistent(t *testing.T) {
	doc := testDoc()
	jobs := newFakeJobs(doc)
	jobID := seedOCRJob(jobs, map[string]string{
		"Header": "Order issued 15/03/2024 by the registry",
		"Body":   "No dates in this narrative",
		"Footer": "Signed on 16/03/2024",
	}, 0.9)
	det := &stubDetector{
		present:    map[detect.Target]bool{detect.TargetStamp: true, detect.TargetSignature: true},
		confidence: 0.8,
	}

	_, err := newAnalyzeStage(jobs, det).Run(context.Background(), jobID)
	require.NoError(t, err)

	out := jobs.analysis[jobID]
	assert.Equal(t, string(dateparse.Consistent), out.DateVerdict)
	assert.False(t, out.NeedsReview)
	require.NotNil(t, out.StampPresent)
	assert.True(t, *out.StampPresent)
	require.NotNil(t, out.SignaturePresent)
	assert.True(t, *out.SignaturePresent)
	// ocr 0.9, best date 1.0, stamp 0.8, signature 0.8
	assert.InDelta(t, 0.875, out.OverallConfidence, 0.001)
	assert.Equal(t, string(constants.JobStatusAnalyzed), jobs.jobs[jobID].Status)

	findings, err := entity.DecodeFindings(out.DateFindings)
	require.NoError(t, err)
	require.Len(t, findings, 3)
	assert.Equal(t, "Header", findings[0].Region)
	require.NotNil(t, findings[0].Date)
	assert.Equal(t, "15/03/2024", findings[0].Date.ExtractedFromText)
	assert.Nil(t, findings[1].Date)
	require.NotNil(t, findings[2].Date)
}

func TestAnalyzeStageInconsistent(t *testing.T) {
	doc := testDoc()
	jobs := newFakeJobs(doc)
	jobID := seedOCRJob(jobs, map[string]string{
		"Header": "Dated 01/01/2024",
		"Footer": "Registered 31/03/2024",
	}, 0.9)
	det := &stubDetector{
		present:    map[detect.Target]bool{detect.TargetStamp: true, detect.TargetSignature: true},
		confidence: 0.8,
	}

	jobID2, err := newAnalyzeStage(jobs, det).Run(context.Background(), jobID)
	require.NoError(t, err)
	require.Equal(t, jobID, jobID2)

	out := jobs.analysis[jobID]
	assert.Equal(t, string(dateparse.Inconsistent), out.DateVerdict)
	assert.True(t, out.NeedsReview)
}

func TestAnalyzeStageNoDates(t *testing.T) {
	doc := testDoc()
	jobs := newFakeJobs(doc)
	jobID := seedOCRJob(jobs, map[string]string{
		"Header": "MEMORANDUM",
		"Body":   "nothing datelike here",
	}, 0.9)
	det := &stubDetector{
		present:    map[detect.Target]bool{detect.TargetStamp: true, detect.TargetSignature: true},
		confidence: 0.8,
	}

	_, err := newAnalyzeStage(jobs, det).Run(context.Background(), jobID)
	require.NoError(t, err)

	out := jobs.analysis[jobID]
	assert.Equal(t, string(dateparse.Unknown), out.DateVerdict)
	assert.True(t, out.NeedsReview)
}

func TestAnalyzeStageLowOCRConfidence(t *testing.T) {
	doc := testDoc()
	jobs := newFakeJobs(doc)
	jobID := seedOCRJob(jobs, map[string]string{
		"Header": "Issued 15/03/2024",
		"Footer": "Signed 16/03/2024",
	}, 0.2)
	det := &stubDetector{
		present:    map[detect.Target]bool{detect.TargetStamp: true, detect.TargetSignature: true},
		confidence: 0.8,
	}

	_, err := newAnalyzeStage(jobs, det).Run(context.Background(), jobID)
	require.NoError(t, err)
	assert.True(t, jobs.analysis[jobID].NeedsReview)
}

func TestAnalyzeStageStampAndSignatureAbsent(t *testing.T) {
	doc := testDoc()
	jobs := newFakeJobs(doc)
	jobID := seedOCRJob(jobs, map[string]string{
		"Header": "Issued 15/03/2024",
		"Footer": "Signed 16/03/2024",
	}, 0.9)
	det := &stubDetector{present: map[detect.Target]bool{}, confidence: 0.7}

	_, err := newAnalyzeStage(jobs, det).Run(context.Background(), jobID)
	require.NoError(t, err)

	out := jobs.analysis[jobID]
	require.NotNil(t, out.StampPresent)
	assert.False(t, *out.StampPresent)
	assert.True(t, out.NeedsReview)
}

func TestAnalyzeStageDetectorErrorTolerated(t *testing.T) {
	doc := testDoc()
	jobs := newFakeJobs(doc)
	jobID := seedOCRJob(jobs, map[string]string{
		"Header": "Issued 15/03/2024",
		"Footer": "Signed 16/03/2024",
	}, 0.9)
	det := &stubDetector{err: errors.New("detector offline")}

	_, err := newAnalyzeStage(jobs, det).Run(context.Background(), jobID)
	require.NoError(t, err)

	out := jobs.analysis[jobID]
	assert.Nil(t, out.StampPresent)
	assert.Nil(t, out.SignaturePresent)
	// Absent detections don't force review on their own.
	assert.False(t, out.NeedsReview)
}

func TestAnalyzeStageWrongStatus(t *testing.T) {
	doc := testDoc()
	jobs := newFakeJobs(doc)
	job := &ent.VerificationJob{
		ID:         uuid.New(),
		DocumentID: doc.ID,
		Status:     string(constants.JobStatusRunning),
	}
	jobs.jobs[job.ID] = job

	_, err := newAnalyzeStage(jobs, &stubDetector{}).Run(context.Background(), job.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not ready")
}

func TestProcessorRun(t *testing.T) {
	doc := testDoc()
	docs := newFakeDocs(doc)
	jobs := newFakeJobs(doc)
	rec := &stubRecognizer{
		texts: map[string]string{
			"Header": "Certificate issued 14 March 2024",
			"Body":   "body text",
			"Footer": "Countersigned 16/03/2024",
		},
		confidence: 0.85,
	}
	det := &stubDetector{
		present:    map[detect.Target]bool{detect.TargetStamp: true, detect.TargetSignature: true},
		confidence: 0.75,
	}
	proc := NewProcessor(testLogger(),
		NewOCRStage(docs, jobs, rec, nil, testLogger()),
		NewAnalyzeStage(testLogger(), Config{}, jobs, pinnedTable(), det),
	)

	jobID, err := proc.Run(context.Background(), doc.ID)
	require.NoError(t, err)

	job := jobs.jobs[jobID]
	assert.Equal(t, string(constants.JobStatusAnalyzed), job.Status)
	out := jobs.analysis[jobID]
	assert.Equal(t, string(dateparse.Consistent), out.DateVerdict)
	assert.False(t, out.NeedsReview)
}

func TestProcessorOCRFailureStops(t *testing.T) {
	doc := testDoc()
	jobs := newFakeJobs(doc)
	rec := &stubRecognizer{
		failRegions: map[string]bool{"Header": true, "Body": true, "Footer": true},
	}
	proc := NewProcessor(testLogger(),
		NewOCRStage(newFakeDocs(doc), jobs, rec, nil, testLogger()),
		NewAnalyzeStage(testLogger(), Config{}, jobs, pinnedTable(), &stubDetector{}),
	)

	jobID, err := proc.Run(context.Background(), doc.ID)
	require.Error(t, err)
	assert.Equal(t, string(constants.JobStatusFailed), jobs.jobs[jobID].Status)
	assert.Empty(t, jobs.analysis)
}
