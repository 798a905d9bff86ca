package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkspect/docverify/gen/ent"
	"github.com/inkspect/docverify/internal/dateparse"
	"github.com/inkspect/docverify/internal/entity"
)

func TestParseYMD(t *testing.T) {
	got, err := ParseYMD("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseYMD("15/03/2024")
	assert.Error(t, err)
}

func TestToVerification(t *testing.T) {
	raw, err := entity.EncodeFindings([]entity.RegionFinding{
		{Region: "Header", Date: &dateparse.DateInformation{
			Date:              time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			Format:            "DD/MM/YYYY",
			Confidence:        0.95,
			ExtractedFromText: "15/03/2024",
		}},
		{Region: "Body"},
	})
	require.NoError(t, err)

	conf := float32(0.9)
	verdict := string(dateparse.Consistent)
	stamp := true
	row := &ent.VerificationJob{
		ID:            uuid.New(),
		DocumentID:    uuid.New(),
		Format:        "TXT",
		Status:        "ANALYZED",
		StartedAt:     time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC),
		RegionTexts:   map[string]string{"Header": "Date: 15/03/2024"},
		OcrConfidence: &conf,
		DateFindings:  raw,
		DateVerdict:   &verdict,
		StampPresent:  &stamp,
	}

	v := ToVerification(row)
	assert.Equal(t, row.ID, v.ID)
	assert.Equal(t, row.DocumentID, v.DocumentID)
	assert.Equal(t, "TXT", v.Format)
	require.Len(t, v.Findings, 2)
	assert.Equal(t, "Header", v.Findings[0].Region)
	require.NotNil(t, v.Findings[0].Date)
	assert.Equal(t, "DD/MM/YYYY", v.Findings[0].Date.Format)
	assert.Nil(t, v.Findings[1].Date)
	assert.Equal(t, &conf, v.OCRConfidence)
	assert.Equal(t, &verdict, v.DateVerdict)
	assert.True(t, *v.StampPresent)
	assert.Nil(t, v.SignaturePresent)
}

func TestToPBVerification(t *testing.T) {
	finished := time.Date(2025, time.June, 1, 10, 0, 3, 0, time.UTC)
	conf := float32(0.9)
	verdict := string(dateparse.Consistent)
	v := &entity.Verification{
		ID:         uuid.New(),
		DocumentID: uuid.New(),
		Format:     "TXT",
		Status:     "ANALYZED",
		StartedAt:  time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC),
		FinishedAt: &finished,
		Findings: []entity.RegionFinding{
			{Region: "Header", Date: &dateparse.DateInformation{
				Date:              time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
				Format:            "DD/MM/YYYY",
				Confidence:        0.95,
				ExtractedFromText: "15/03/2024",
			}},
			{Region: "Footer"},
		},
		DateVerdict:       &verdict,
		OverallConfidence: &conf,
		NeedsReview:       true,
	}

	pb := ToPBVerification(v)
	assert.Equal(t, v.ID.String(), pb.GetId())
	assert.Equal(t, "2025-06-01T10:00:00Z", pb.GetStartedAt())
	assert.Equal(t, "2025-06-01T10:00:03Z", pb.GetFinishedAt())
	require.Len(t, pb.GetFindings(), 2)
	assert.Equal(t, "2024-03-15", pb.GetFindings()[0].GetDate())
	assert.InDelta(t, 0.95, pb.GetFindings()[0].GetConfidence(), 1e-6)
	assert.Empty(t, pb.GetFindings()[1].GetDate())
	assert.Equal(t, "Consistent", pb.GetDateVerdict())
	require.NotNil(t, pb.OverallConfidence)
	assert.InDelta(t, 0.9, pb.GetOverallConfidence(), 1e-6)
	assert.Nil(t, pb.StampPresent)
	assert.True(t, pb.GetNeedsReview())
	assert.Empty(t, pb.GetErrorMessage())
}

func TestToPBVerificationRunningJob(t *testing.T) {
	v := &entity.Verification{
		ID:         uuid.New(),
		DocumentID: uuid.New(),
		Format:     "IMAGE",
		Status:     "RUNNING",
		StartedAt:  time.Now(),
	}

	pb := ToPBVerification(v)
	assert.Empty(t, pb.GetFinishedAt())
	assert.Empty(t, pb.GetFindings())
	assert.Nil(t, pb.OcrConfidence)
	assert.Empty(t, pb.GetDateVerdict())
}
