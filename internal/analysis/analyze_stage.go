package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/inkspect/docverify/constants"
	"github.com/inkspect/docverify/internal/common"
	"github.com/inkspect/docverify/internal/dateparse"
	"github.com/inkspect/docverify/internal/detect"
	"github.com/inkspect/docverify/internal/entity"
	"github.com/inkspect/docverify/internal/repository"
)

// Config holds thresholds and region order for the analyze stage.
type Config struct {
	Regions           []string
	MinOCRConfidence  float32 // below this the job is flagged for review
	MinDateConfidence float64 // below this the winning date is flagged for review
}

type AnalyzeStage struct {
	Logger   *slog.Logger
	Cfg      Config
	Jobs     repository.VerificationJobRepository
	Dates    *dateparse.Table
	Detector detect.Detector
}

func NewAnalyzeStage(logger *slog.Logger, cfg Config, jobs repository.VerificationJobRepository, dates *dateparse.Table, det detect.Detector) *AnalyzeStage {
	if logger == nil {
		logger = slog.Default()
	}
	if len(cfg.Regions) == 0 {
		cfg.Regions = constants.AsStringSlice()
	}
	if cfg.MinOCRConfidence <= 0 {
		cfg.MinOCRConfidence = 0.5
	}
	if cfg.MinDateConfidence <= 0 {
		cfg.MinDateConfidence = 0.6
	}
	if dates == nil {
		dates = dateparse.New()
	}
	return &AnalyzeStage{Logger: logger, Cfg: cfg, Jobs: jobs, Dates: dates, Detector: det}
}

// Run executes the analysis stage for an existing OCR job.
// Preconditions: job is OCR_OK with stored region texts.
// Effects: writes date findings, consistency verdict, detection results,
// overall confidence, and needs_review; advances status to ANALYZED.
func (s *AnalyzeStage) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	logger := s.Logger
	if docID := common.DocumentIDFromContext(ctx); docID != "" {
		logger = logger.With("document_id", docID)
	}

	job, doc, err := s.Jobs.GetWithDocument(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.Status != string(constants.JobStatusOCROK) {
		return job.ID, fmt.Errorf("job not ready for analysis: status=%s", job.Status)
	}

	// Date extraction per region, in configured region order.
	findings := make([]entity.RegionFinding, 0, len(s.Cfg.Regions))
	var dates []*dateparse.DateInformation
	for _, region := range s.Cfg.Regions {
		text, ok := job.RegionTexts[region]
		if !ok {
			continue
		}
		info := s.Dates.Extract(text)
		findings = append(findings, entity.RegionFinding{Region: region, Date: info})
		dates = append(dates, info)
	}
	verdict := dateparse.CheckConsistency(dates...)

	// Stamp and signature presence.
	var (
		stampPresent, sigPresent *bool
		stampConf, sigConf       *float32
	)
	if s.Detector != nil {
		if det, err := s.Detector.Detect(ctx, detect.DetectRequest{ImagePath: doc.SourcePath, Target: detect.TargetStamp}); err != nil {
			logger.Warn("stamp detection failed", "job_id", job.ID, "err", err)
		} else {
			stampPresent, stampConf = &det.Present, &det.Confidence
		}
		if det, err := s.Detector.Detect(ctx, detect.DetectRequest{ImagePath: doc.SourcePath, Target: detect.TargetSignature}); err != nil {
			logger.Warn("signature detection failed", "job_id", job.ID, "err", err)
		} else {
			sigPresent, sigConf = &det.Present, &det.Confidence
		}
	}

	best := entity.BestFinding(findings)
	needsReview := best == nil || verdict == dateparse.Inconsistent
	if job.OcrConfidence != nil && *job.OcrConfidence < s.Cfg.MinOCRConfidence {
		needsReview = true
	}
	if best != nil && best.Date.Confidence < s.Cfg.MinDateConfidence {
		needsReview = true
	}
	if stampPresent != nil && sigPresent != nil && !*stampPresent && !*sigPresent {
		needsReview = true
	}

	overall := overallConfidence(job.OcrConfidence, best, stampConf, sigConf)

	raw, err := entity.EncodeFindings(findings)
	if err != nil {
		_ = s.Jobs.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("encode findings: %w", err)
	}
	out := repository.AnalysisOutcome{
		DateFindings:        raw,
		DateVerdict:         string(verdict),
		StampPresent:        stampPresent,
		StampConfidence:     stampConf,
		SignaturePresent:    sigPresent,
		SignatureConfidence: sigConf,
		OverallConfidence:   overall,
		NeedsReview:         needsReview,
	}
	if err := s.Jobs.FinishAnalysis(ctx, job.ID, out); err != nil {
		return job.ID, err
	}

	var bestDate string
	if best != nil {
		bestDate = best.Date.Date.Format("2006-01-02")
	}
	s.Logger.Info("analysis completed",
		"job_id", job.ID, "document_id", doc.ID,
		"verdict", verdict, "best_date", bestDate,
		"needs_review", needsReview, "overall_confidence", overall,
	)
	return job.ID, nil
}

// overallConfidence averages whichever signals the run produced.
func overallConfidence(ocr *float32, best *entity.RegionFinding, stamp, sig *float32) float32 {
	var (
		sum float64
		n   int
	)
	if ocr != nil {
		sum += float64(*ocr)
		n++
	}
	if best != nil {
		sum += best.Date.Confidence
		n++
	}
	if stamp != nil {
		sum += float64(*stamp)
		n++
	}
	if sig != nil {
		sum += float64(*sig)
		n++
	}
	if n == 0 {
		return 0
	}
	return float32(sum / float64(n))
}
