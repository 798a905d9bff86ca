package utils

import (
	"time"

	"github.com/inkspect/docverify/gen/ent"
	docverifypb "github.com/inkspect/docverify/gen/proto/docverify/v1"
	"github.com/inkspect/docverify/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ToVerification maps a job row to the transfer shape. Findings that fail to
// decode are dropped rather than failing the whole mapping.
func ToVerification(e *ent.VerificationJob) *entity.Verification {
	findings, _ := entity.DecodeFindings(e.DateFindings)
	return &entity.Verification{
		ID:                  e.ID,
		DocumentID:          e.DocumentID,
		Format:              e.Format,
		Status:              e.Status,
		StartedAt:           e.StartedAt,
		FinishedAt:          e.FinishedAt,
		ErrorMessage:        e.ErrorMessage,
		RegionTexts:         e.RegionTexts,
		OCRConfidence:       e.OcrConfidence,
		Findings:            findings,
		DateVerdict:         e.DateVerdict,
		StampPresent:        e.StampPresent,
		StampConfidence:     e.StampConfidence,
		SignaturePresent:    e.SignaturePresent,
		SignatureConfidence: e.SignatureConfidence,
		OverallConfidence:   e.OverallConfidence,
		NeedsReview:         e.NeedsReview,
		ModelName:           e.ModelName,
		ModelParams:         e.ModelParams,
	}
}

func ToPBDateFinding(f entity.RegionFinding) *docverifypb.DateFinding {
	pb := &docverifypb.DateFinding{Region: f.Region}
	if f.Date != nil {
		pb.Date = f.Date.Date.Format("2006-01-02")
		pb.Format = f.Date.Format
		pb.Confidence = float32(f.Date.Confidence)
		pb.ExtractedFromText = f.Date.ExtractedFromText
	}
	return pb
}

func ToPBVerification(v *entity.Verification) *docverifypb.Verification {
	findings := make([]*docverifypb.DateFinding, 0, len(v.Findings))
	for _, f := range v.Findings {
		findings = append(findings, ToPBDateFinding(f))
	}
	return &docverifypb.Verification{
		Id:                  v.ID.String(),
		DocumentId:          v.DocumentID.String(),
		Format:              v.Format,
		Status:              v.Status,
		StartedAt:           v.StartedAt.UTC().Format(time.RFC3339),
		FinishedAt:          timeOrEmpty(v.FinishedAt),
		ErrorMessage:        strOrEmpty(v.ErrorMessage),
		OcrConfidence:       v.OCRConfidence,
		Findings:            findings,
		DateVerdict:         strOrEmpty(v.DateVerdict),
		StampPresent:        v.StampPresent,
		StampConfidence:     v.StampConfidence,
		SignaturePresent:    v.SignaturePresent,
		SignatureConfidence: v.SignatureConfidence,
		OverallConfidence:   v.OverallConfidence,
		NeedsReview:         v.NeedsReview,
		ModelName:           strOrEmpty(v.ModelName),
	}
}
