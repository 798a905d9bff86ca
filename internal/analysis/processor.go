package analysis

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/inkspect/docverify/internal/common"
)

// Processor coordinates OCR then analysis for one document.
type Processor struct {
	Logger  *slog.Logger
	OCR     *OCRStage
	Analyze *AnalyzeStage
}

func NewProcessor(logger *slog.Logger, ocr *OCRStage, analyze *AnalyzeStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, OCR: ocr, Analyze: analyze}
}

// Run verifies a registered document end to end and returns the job ID.
// The job ID is valid even on error once the OCR stage has started it.
func (p *Processor) Run(ctx context.Context, documentID uuid.UUID) (uuid.UUID, error) {
	logger := p.Logger
	if trace := common.RequestIDFromContext(ctx); trace != "" {
		logger = logger.With("trace_id", trace)
	}

	jobID, summary, err := p.OCR.Run(ctx, documentID)
	if err != nil {
		logger.Error("processor.ocr.failed", "document_id", documentID, "err", err)
		return jobID, err
	}
	logger.Info("processor.ocr.ok",
		"document_id", documentID,
		"job_id", jobID,
		"regions", len(summary.RegionTexts),
		"failed_regions", len(summary.FailedRegions),
		"confidence", summary.Confidence,
	)

	if _, err := p.Analyze.Run(ctx, jobID); err != nil {
		logger.Error("processor.analyze.failed", "job_id", jobID, "err", err)
		return jobID, err
	}
	logger.Info("processor.analyze.ok", "job_id", jobID)
	return jobID, nil
}
