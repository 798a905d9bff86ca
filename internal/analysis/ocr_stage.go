// Package analysis orchestrates the verification pipeline: region OCR,
// date extraction and consistency, stamp/signature detection, and the
// review flags persisted on each job.
package analysis

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/inkspect/docverify/constants"
	"github.com/inkspect/docverify/internal/inference"
	"github.com/inkspect/docverify/internal/repository"
)

type OCRStage struct {
	Docs       repository.DocumentRepository
	Jobs       repository.VerificationJobRepository
	Recognizer inference.TextRecognizer
	Regions    []string
	Language   string
	ModelName  string
	Logger     *slog.Logger
}

func NewOCRStage(docs repository.DocumentRepository, jobs repository.VerificationJobRepository, rec inference.TextRecognizer, regions []string, logger *slog.Logger) *OCRStage {
	if len(regions) == 0 {
		regions = constants.AsStringSlice()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{Docs: docs, Jobs: jobs, Recognizer: rec, Regions: regions, Logger: logger}
}

// OCRSummary reports what the OCR stage managed to read.
type OCRSummary struct {
	RegionTexts   map[string]string
	Confidence    float32 // mean over regions that succeeded
	FailedRegions []string
}

// Run starts a verification job for the document, reads each configured
// region through the recognizer, and persists the region texts. A region
// that fails is skipped with a warning; the job fails only when every
// region fails.
func (s *OCRStage) Run(ctx context.Context, documentID uuid.UUID) (uuid.UUID, OCRSummary, error) {
	doc, err := s.Docs.GetByID(ctx, documentID)
	if err != nil {
		return uuid.Nil, OCRSummary{}, fmt.Errorf("get document: %w", err)
	}

	format := constants.MapExtToFormat(doc.FileExt)
	job, err := s.Jobs.Start(ctx, doc.ID, format)
	if err != nil {
		return uuid.Nil, OCRSummary{}, err
	}

	hashHex := hex.EncodeToString(doc.ContentHash)
	texts := make(map[string]string, len(s.Regions))
	var (
		confSum float32
		failed  []string
	)
	for _, region := range s.Regions {
		res, _, err := s.Recognizer.RecognizeText(ctx, inference.RecognizeRequest{
			FilePath:       doc.SourcePath,
			Region:         region,
			Language:       s.Language,
			ContentHashHex: hashHex,
		})
		if err != nil {
			s.Logger.Warn("region recognition failed",
				"job_id", job.ID, "region", region, "path", doc.SourcePath, "err", err)
			failed = append(failed, region)
			continue
		}
		texts[region] = res.Text
		confSum += res.Confidence
	}

	if len(texts) == 0 {
		err := fmt.Errorf("recognition failed for all %d regions", len(s.Regions))
		_ = s.Jobs.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, OCRSummary{FailedRegions: failed}, err
	}

	summary := OCRSummary{
		RegionTexts:   texts,
		Confidence:    confSum / float32(len(texts)),
		FailedRegions: failed,
	}
	out := repository.OCROutcome{
		RegionTexts: texts,
		Confidence:  summary.Confidence,
		ModelName:   s.ModelName,
		ModelParams: map[string]any{"language": s.Language, "regions": s.Regions},
	}
	if err := s.Jobs.SaveOCR(ctx, job.ID, out); err != nil {
		return job.ID, summary, err
	}
	return job.ID, summary, nil
}
