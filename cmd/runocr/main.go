package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/inkspect/docverify/constants"
	"github.com/inkspect/docverify/internal/inference"
	"github.com/inkspect/docverify/internal/inference/openai"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	if len(os.Args) < 2 || len(os.Args) > 3 {
		logger.Error("usage", "cmd", "runocr <file> [region]")
		os.Exit(2)
	}
	path := os.Args[1]
	region := ""
	if len(os.Args) == 3 {
		r, ok := constants.CanonicalizeRegion(os.Args[2])
		if !ok {
			logger.Error("unknown region", "arg", os.Args[2])
			os.Exit(2)
		}
		region = string(r)
	}

	if constants.MapExtToFormat(filepath.Ext(path)) == constants.FormatImage && os.Getenv("OPENAI_API_KEY") == "" {
		logger.Error("OPENAI_API_KEY env var is required for image input")
		os.Exit(2)
	}

	// hash for request correlation in the endpoint logs
	hashHex := ""
	if f, err := os.Open(path); err == nil {
		h := sha256.New()
		if _, err := io.Copy(h, f); err == nil {
			hashHex = hex.EncodeToString(h.Sum(nil))
		}
		_ = f.Close()
	}

	language := getenv("OCR_LANGUAGE", "en")
	client := openai.NewClient(openai.Config{
		Model:    getenv("OPENAI_MODEL", "gpt-4o-mini"),
		Language: language,
		Timeout:  60 * time.Second,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	res, _, err := client.RecognizeText(ctx, inference.RecognizeRequest{
		FilePath:       path,
		Region:         region,
		Language:       language,
		ContentHashHex: hashHex,
	})
	dur := time.Since(start)

	if err != nil {
		logger.Error("recognition failed", "file", path, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}
	logger.Info("recognition OK",
		"file", path,
		"region", res.Region,
		"confidence", res.Confidence,
		"bytes", len(res.Text),
		"duration_ms", dur.Milliseconds(),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
