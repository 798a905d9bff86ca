package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/inkspect/docverify/internal/dateparse"
)

// RegionFinding is one region's date-extraction outcome. Date is nil when the
// region text held nothing date-shaped.
type RegionFinding struct {
	Region string                     `json:"region"`
	Date   *dateparse.DateInformation `json:"date,omitempty"`
}

// EncodeFindings marshals per-region findings for storage on a job row.
func EncodeFindings(findings []RegionFinding) (json.RawMessage, error) {
	return json.Marshal(findings)
}

// DecodeFindings unmarshals stored findings; nil input yields an empty slice.
func DecodeFindings(raw json.RawMessage) ([]RegionFinding, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var findings []RegionFinding
	if err := json.Unmarshal(raw, &findings); err != nil {
		return nil, err
	}
	return findings, nil
}

// BestFinding returns the highest-confidence finding with a present date, or
// nil when no region produced one. Ties keep region order.
func BestFinding(findings []RegionFinding) *RegionFinding {
	var best *RegionFinding
	for i := range findings {
		f := &findings[i]
		if f.Date == nil {
			continue
		}
		if best == nil || f.Date.Confidence > best.Date.Confidence {
			best = f
		}
	}
	return best
}

// Verification represents a verification job for data transfer between layers.
type Verification struct {
	ID                  uuid.UUID         `json:"id"`
	DocumentID          uuid.UUID         `json:"document_id"`
	Format              string            `json:"format"`
	Status              string            `json:"status"`
	StartedAt           time.Time         `json:"started_at"`
	FinishedAt          *time.Time        `json:"finished_at,omitempty"`
	ErrorMessage        *string           `json:"error_message,omitempty"`
	RegionTexts         map[string]string `json:"region_texts,omitempty"`
	OCRConfidence       *float32          `json:"ocr_confidence,omitempty"`
	Findings            []RegionFinding   `json:"findings,omitempty"`
	DateVerdict         *string           `json:"date_verdict,omitempty"`
	StampPresent        *bool             `json:"stamp_present,omitempty"`
	StampConfidence     *float32          `json:"stamp_confidence,omitempty"`
	SignaturePresent    *bool             `json:"signature_present,omitempty"`
	SignatureConfidence *float32          `json:"signature_confidence,omitempty"`
	OverallConfidence   *float32          `json:"overall_confidence,omitempty"`
	NeedsReview         bool              `json:"needs_review"`
	ModelName           *string           `json:"model_name,omitempty"`
	ModelParams         json.RawMessage   `json:"model_params,omitempty"`
}
