package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/inkspect/docverify/internal/analysis"
	"github.com/inkspect/docverify/internal/common"
	"github.com/inkspect/docverify/internal/dateparse"
	"github.com/inkspect/docverify/internal/detect"
	"github.com/inkspect/docverify/internal/export"
	"github.com/inkspect/docverify/internal/inference/openai"
	"github.com/inkspect/docverify/internal/ingest"
	repo "github.com/inkspect/docverify/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem   = flag.Bool("inmem", true, "use an in-memory SQLite audit store (false reads DB_URL)")
		dir     = flag.String("dir", "", "directory to verify documents from (required)")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		fromStr = flag.String("from", "", "from date YYYY-MM-DD")
		toStr   = flag.String("to", "", "to date YYYY-MM-DD")
	)
	flag.Parse()

	// Validate required flags
	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	// If output file not specified, use parent directory with default filename
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "verifications.xlsx")
	}

	// Parse date filters
	var from, to *time.Time
	if *fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", *fromStr); err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			from = &parsed
		}
	}
	if *toStr != "" {
		if parsed, err := time.Parse("2006-01-02", *toStr); err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			to = &parsed
		}
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	_ = godotenv.Load()
	cfg := common.LoadConfig()

	// Initialize the audit store
	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	entc := dbResult.Client

	// Wire repositories
	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewVerificationJobRepository(entc, logger)

	// Setup OCR endpoint client (text files never touch the endpoint)
	if cfg.Inference.APIKey == "" {
		logger.Warn("OPENAI_API_KEY not configured, image documents will fail OCR")
	}
	ocrClient := openai.NewClient(openai.Config{
		APIKey:      cfg.Inference.APIKey,
		BaseURL:     cfg.Inference.BaseURL,
		Model:       cfg.Inference.Model,
		Temperature: cfg.Inference.Temperature,
		Timeout:     cfg.Inference.Timeout,
		Language:    cfg.Inference.Language,
	}, logger)

	// Setup verification pipeline
	ocrStage := analysis.NewOCRStage(docsRepo, jobsRepo, ocrClient, cfg.Analysis.Regions, logger)
	ocrStage.Language = cfg.Inference.Language
	ocrStage.ModelName = cfg.Inference.Model

	analyzeStage := analysis.NewAnalyzeStage(logger, analysis.Config{
		Regions:           cfg.Analysis.Regions,
		MinOCRConfidence:  cfg.Analysis.MinOCRConfidence,
		MinDateConfidence: cfg.Analysis.MinDateConfidence,
	}, jobsRepo, dateparse.New(), detect.NewSimulated(logger))

	processor := analysis.NewProcessor(logger, ocrStage, analyzeStage)

	// Setup ingestor
	ingestor := ingest.NewFSIngestor(docsRepo)

	// Ingest directory
	logger.Info("starting ingestion", "dir", *dir)
	ingestionResults, stats, err := ingestor.IngestDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}

	// Extract document IDs from ingestion results
	var ingested []uuid.UUID
	for _, result := range ingestionResults {
		if result.Err == "" {
			docID, err := uuid.Parse(result.DocumentID)
			if err != nil {
				logger.Error("failed to parse document ID", "document_id", result.DocumentID, "error", err)
				continue
			}
			ingested = append(ingested, docID)
		}
	}
	logger.Info("ingestion complete",
		"documents_ingested", len(ingested),
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	// Verify each ingested document
	processed := 0
	failures := 0

	for _, docID := range ingested {
		logger.Info("verifying document", "document_id", docID)
		_, err := processor.Run(ctx, docID)
		if err != nil {
			logger.Error("failed to verify document", "document_id", docID, "error", err)
			failures++
		} else {
			processed++
		}
	}

	// Export to XLSX
	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(jobsRepo, docsRepo, logger)

	xlsxBytes, err := exportService.ExportVerificationsXLSX(ctx, from, to)
	if err != nil {
		logger.Error("failed to export verifications", "error", err)
		os.Exit(1)
	}

	// Write to file
	err = os.WriteFile(*out, xlsxBytes, 0644)
	if err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	// Log summary
	logger.Info("batch verification complete",
		"documents_ingested", len(ingested),
		"documents_verified", processed,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch verification complete!\n")
	fmt.Printf("- Documents ingested: %d\n", len(ingested))
	fmt.Printf("- Documents verified: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
