package export

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/inkspect/docverify/constants"
	"github.com/inkspect/docverify/gen/ent"
	"github.com/inkspect/docverify/internal/dateparse"
	"github.com/inkspect/docverify/internal/entity"
	"github.com/inkspect/docverify/internal/repository"
)

type fakeJobsRepo struct {
	rows []*ent.VerificationJob

	gotFrom, gotTo *time.Time
}

func (f *fakeJobsRepo) Start(context.Context, uuid.UUID, string) (*ent.VerificationJob, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeJobsRepo) SaveOCR(context.Context, uuid.UUID, repository.OCROutcome) error {
	return errors.New("not implemented")
}
func (f *fakeJobsRepo) FinishAnalysis(context.Context, uuid.UUID, repository.AnalysisOutcome) error {
	return errors.New("not implemented")
}
func (f *fakeJobsRepo) FinishFailure(context.Context, uuid.UUID, string) error {
	return errors.New("not implemented")
}
func (f *fakeJobsRepo) GetByID(context.Context, uuid.UUID) (*ent.VerificationJob, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeJobsRepo) GetWithDocument(context.Context, uuid.UUID) (*ent.VerificationJob, *ent.Document, error) {
	return nil, nil, errors.New("not implemented")
}
func (f *fakeJobsRepo) GetLatestByDocument(context.Context, uuid.UUID) (*ent.VerificationJob, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeJobsRepo) ListByWindow(_ context.Context, from, to *time.Time) ([]*ent.VerificationJob, error) {
	f.gotFrom, f.gotTo = from, to
	return f.rows, nil
}

type fakeDocsRepo struct {
	docs map[uuid.UUID]*ent.Document
}

func (f *fakeDocsRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return doc, nil
}
func (f *fakeDocsRepo) GetByHash(context.Context, []byte) (*ent.Document, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeDocsRepo) Create(context.Context, string, string, string, int, []byte, time.Time) (*ent.Document, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeDocsRepo) UpsertByHash(context.Context, string, string, string, int, []byte, time.Time) (*ent.Document, bool, error) {
	return nil, false, errors.New("not implemented")
}
func (f *fakeDocsRepo) List(context.Context, *time.Time, *time.Time) ([]*ent.Document, error) {
	return nil, nil
}

func strPtr(s string) *string   { return &s }
func boolPtr(b bool) *bool      { return &b }
func f32Ptr(f float32) *float32 { return &f }

func exportLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func analyzedJob(t *testing.T, docID uuid.UUID) *ent.VerificationJob {
	t.Helper()
	findings, err := entity.EncodeFindings([]entity.RegionFinding{
		{Region: "Header", Date: &dateparse.DateInformation{
			Date:              time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			Format:            "DD/MM/YYYY",
			Confidence:        0.95,
			ExtractedFromText: "15/03/2024",
		}},
		{Region: "Body"},
		{Region: "Footer", Date: &dateparse.DateInformation{
			Date:              time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC),
			Format:            "DD/MM/YYYY",
			Confidence:        0.90,
			ExtractedFromText: "16/03/2024",
		}},
	})
	require.NoError(t, err)

	return &ent.VerificationJob{
		ID:               uuid.New(),
		DocumentID:       docID,
		Format:           constants.FormatText,
		Status:           string(constants.JobStatusAnalyzed),
		StartedAt:        time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC),
		DateFindings:     findings,
		DateVerdict:      strPtr(string(dateparse.Consistent)),
		StampPresent:     boolPtr(true),
		StampConfidence:  f32Ptr(0.81),
		SignaturePresent: boolPtr(false),
		NeedsReview:      false,
	}
}

func TestExportVerificationsXLSX(t *testing.T) {
	docID := uuid.New()
	doc := &ent.Document{
		ID:         docID,
		SourcePath: "/in/certificate.txt",
		Filename:   "certificate.txt",
	}

	failed := &ent.VerificationJob{
		ID:          uuid.New(),
		DocumentID:  docID,
		Format:      constants.FormatImage,
		Status:      string(constants.JobStatusFailed),
		StartedAt:   time.Date(2024, time.April, 2, 9, 0, 0, 0, time.UTC),
		NeedsReview: false,
	}

	jobs := &fakeJobsRepo{rows: []*ent.VerificationJob{analyzedJob(t, docID), failed}}
	docs := &fakeDocsRepo{docs: map[uuid.UUID]*ent.Document{docID: doc}}

	svc := NewService(jobs, docs, exportLogger())
	b, err := svc.ExportVerificationsXLSX(context.Background(), nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	wb, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	const sheet = "Verifications"
	assert.Equal(t, []string{sheet}, wb.GetSheetList())

	get := func(cell string) string {
		v, err := wb.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}

	// Header row
	assert.Equal(t, "Document", get("A1"))
	assert.Equal(t, "Verified Date", get("B1"))
	assert.Equal(t, "Consistency", get("E1"))
	assert.Equal(t, "File Path", get("J1"))

	// Analyzed row: best finding is the Header one (highest confidence)
	assert.Equal(t, "certificate.txt", get("A2"))
	assert.Equal(t, "2024-03-15", get("B2"))
	assert.Equal(t, "DD/MM/YYYY", get("C2"))
	assert.Equal(t, "0.95", get("D2"))
	assert.Equal(t, "Consistent", get("E2"))
	assert.Equal(t, "Yes (0.81)", get("F2"))
	assert.Equal(t, "No", get("G2"))
	assert.Equal(t, "No", get("H2"))
	assert.Equal(t, "ANALYZED", get("I2"))
	assert.Equal(t, "/in/certificate.txt", get("J2"))

	// Failed row: no findings, no verdict, no detections
	assert.Equal(t, "", get("B3"))
	assert.Equal(t, "", get("E3"))
	assert.Equal(t, "", get("F3"))
	assert.Equal(t, "FAILED", get("I3"))
}

func TestExportWindowNormalization(t *testing.T) {
	jobs := &fakeJobsRepo{}
	docs := &fakeDocsRepo{}
	svc := NewService(jobs, docs, exportLogger())

	from := time.Date(2024, time.March, 10, 15, 4, 5, 0, time.UTC)
	_, err := svc.ExportVerificationsXLSX(context.Background(), &from, nil)
	require.NoError(t, err)

	require.NotNil(t, jobs.gotFrom)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), *jobs.gotFrom)
	// from-only windows are capped at the end of today
	require.NotNil(t, jobs.gotTo)
	assert.Equal(t, 23, jobs.gotTo.Hour())

	// to-only keeps the open lower bound
	jobs.gotFrom, jobs.gotTo = nil, nil
	to := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	_, err = svc.ExportVerificationsXLSX(context.Background(), nil, &to)
	require.NoError(t, err)
	assert.Nil(t, jobs.gotFrom)
	require.NotNil(t, jobs.gotTo)
	assert.Equal(t, time.Date(2024, time.March, 20, 23, 59, 59, 0, time.UTC), *jobs.gotTo)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "long…", truncate("longer", 5))
	assert.Equal(t, "untouched", truncate("untouched", 0))
}

func TestPresence(t *testing.T) {
	assert.Equal(t, "", presence(nil, nil))
	assert.Equal(t, "Yes", presence(boolPtr(true), nil))
	assert.Equal(t, "No (0.70)", presence(boolPtr(false), f32Ptr(0.70)))
}
