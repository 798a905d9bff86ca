package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/inkspect/docverify/gen/proto/docverify/v1"
	"github.com/inkspect/docverify/internal/analysis"
	"github.com/inkspect/docverify/internal/async"
	"github.com/inkspect/docverify/internal/common"
	"github.com/inkspect/docverify/internal/dateparse"
	"github.com/inkspect/docverify/internal/detect"
	"github.com/inkspect/docverify/internal/export"
	"github.com/inkspect/docverify/internal/inference/openai"
	"github.com/inkspect/docverify/internal/ingest"
	repo "github.com/inkspect/docverify/internal/repository"
	svc "github.com/inkspect/docverify/internal/server"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time and level attributes, keep message and other variables
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.LoadFromFile(path); err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			os.Exit(1)
		}
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	addr := cfg.Server.GRPCAddr
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	// Ping DB to ensure connectivity
	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	// gRPC server
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewVerificationJobRepository(entc, logger)

	// OCR endpoint client
	ocrClient := openai.NewClient(openai.Config{
		APIKey:      cfg.Inference.APIKey,
		BaseURL:     cfg.Inference.BaseURL,
		Model:       cfg.Inference.Model,
		Temperature: cfg.Inference.Temperature,
		Timeout:     cfg.Inference.Timeout,
		Language:    cfg.Inference.Language,
	}, logger)

	ocrStage := analysis.NewOCRStage(docsRepo, jobsRepo, ocrClient, cfg.Analysis.Regions, logger)
	ocrStage.Language = cfg.Inference.Language
	ocrStage.ModelName = cfg.Inference.Model

	analyzeStage := analysis.NewAnalyzeStage(logger, analysis.Config{
		Regions:           cfg.Analysis.Regions,
		MinOCRConfidence:  cfg.Analysis.MinOCRConfidence,
		MinDateConfidence: cfg.Analysis.MinDateConfidence,
	}, jobsRepo, dateparse.New(), detect.NewSimulated(logger))

	// Orchestrator
	processor := analysis.NewProcessor(logger, ocrStage, analyzeStage)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Analysis.Workers),
		async.WithQueueSize(cfg.Analysis.QueueSize),
		async.WithProcessTimeout(cfg.Analysis.ProcessTimeout),
	)

	ingestor := ingest.NewFSIngestor(docsRepo)
	verificationService := svc.NewVerificationService(ingestor, processor, queue, jobsRepo, logger)
	v1.RegisterVerificationServiceServer(grpcServer, verificationService)

	exportServer := svc.NewExportServer(export.NewService(jobsRepo, docsRepo, logger), logger)
	v1.RegisterExportServiceServer(grpcServer, exportServer)

	if len(cfg.Ingest.WatchDirs) > 0 {
		startWatchLoop(ctx, cfg.Ingest, ingestor, queue, logger)
	}

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	// Set the service as serving (empty string means overall server health)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("docverifyd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

// startWatchLoop ingests and enqueues every document the watcher reports.
func startWatchLoop(ctx context.Context, cfg common.IngestConfig, ingestor ingest.Ingestor, queue async.Queue, logger *slog.Logger) {
	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       cfg.WatchDirs,
		InitialScan: cfg.InitialScan,
		Debounce:    cfg.Debounce,
	}, logger)
	if err != nil {
		logger.Error("failed to start watcher", "dirs", cfg.WatchDirs, "error", err)
		os.Exit(1)
	}
	logger.Info("watching for documents", "dirs", cfg.WatchDirs)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case werr, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				logger.Warn("watcher error", "error", werr)
			case path, ok := <-events:
				if !ok {
					return
				}
				r, err := ingestor.IngestPath(ctx, path)
				if err != nil {
					logger.Warn("watch ingest failed", "path", path, "error", err)
					continue
				}
				docID, err := uuid.Parse(r.DocumentID)
				if err != nil {
					continue
				}
				if err := queue.Enqueue(ctx, async.Job{DocumentID: docID, SubmittedAt: time.Now()}); err != nil {
					logger.Warn("watch enqueue failed", "document_id", r.DocumentID, "error", err)
				}
			}
		}
	}()
}
