package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/inkspect/docverify/internal/entity"
	"github.com/inkspect/docverify/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	jobs   repository.VerificationJobRepository
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewService(jobs repository.VerificationJobRepository, docs repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobs: jobs, docs: docs, logger: logger}
}

// ExportVerificationsXLSX returns an XLSX workbook (as bytes) for the given date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> every verification on record.
func (s *Service) ExportVerificationsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC; the upper bound covers the whole day)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	jobs, err := s.jobs.ListByWindow(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query verifications: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Verifications"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// Drop the workbook's default sheet so only ours remains.
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Document",
		"Verified Date",
		"Date Format",
		"Date Confidence",
		"Consistency",
		"Stamp",
		"Signature",
		"Needs Review",
		"Status",
		"File Path",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, job := range jobs {
		// Resolve the document for name and path
		filename, filePath := "", ""
		if doc, err := s.docs.GetByID(ctx, job.DocumentID); err == nil && doc != nil {
			filename = doc.Filename
			filePath = doc.SourcePath
		}

		findings, err := entity.DecodeFindings(job.DateFindings)
		if err != nil {
			s.logger.Warn("export.findings.decode_error", "job_id", job.ID, "err", err)
		}
		best := entity.BestFinding(findings)

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		// 1) Document
		write(1, truncate(filename, 64))

		// 2-4) Winning date, its format tag, and its confidence
		if best != nil {
			write(2, best.Date.Date.Format("2006-01-02"))
			write(3, best.Date.Format)
			write(4, fmt.Sprintf("%.2f", best.Date.Confidence))
		} else {
			write(2, "")
			write(3, "")
			write(4, "")
		}

		// 5) Cross-region consistency verdict
		verdict := ""
		if job.DateVerdict != nil {
			verdict = *job.DateVerdict
		}
		write(5, verdict)

		// 6-7) Detections
		write(6, presence(job.StampPresent, job.StampConfidence))
		write(7, presence(job.SignaturePresent, job.SignatureConfidence))

		// 8) Needs Review
		write(8, yesNo(job.NeedsReview))

		// 9) Status
		write(9, job.Status)

		// 10) File Path
		write(10, filePath)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 28) // document
	_ = f.SetColWidth(sheet, "B", "B", 14) // date
	_ = f.SetColWidth(sheet, "C", "C", 18) // format
	_ = f.SetColWidth(sheet, "D", "D", 14) // confidence
	_ = f.SetColWidth(sheet, "E", "E", 14) // verdict
	_ = f.SetColWidth(sheet, "F", "G", 12) // detections
	_ = f.SetColWidth(sheet, "H", "I", 12) // review/status
	_ = f.SetColWidth(sheet, "J", "J", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(jobs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// presence renders a detection outcome; empty when detection never ran.
func presence(present *bool, conf *float32) string {
	if present == nil {
		return ""
	}
	label := "No"
	if *present {
		label = "Yes"
	}
	if conf != nil {
		return fmt.Sprintf("%s (%.2f)", label, *conf)
	}
	return label
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
