package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/inkspect/docverify/internal/dateparse"
)

// output is what rundate prints: one extraction per input text, in input
// order, plus the cross-text consistency verdict.
type output struct {
	Extractions []*dateparse.DateInformation `json:"extractions"`
	Verdict     dateparse.Consistency        `json:"verdict"`
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	texts := os.Args[1:]
	if len(texts) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Error("read stdin", "error", err)
			os.Exit(1)
		}
		if len(data) == 0 {
			logger.Error("usage", "cmd", "rundate <text> [text ...]  (or pipe text on stdin)")
			os.Exit(2)
		}
		texts = []string{string(data)}
	}

	table := dateparse.New()

	out := output{Extractions: make([]*dateparse.DateInformation, 0, len(texts))}
	for _, text := range texts {
		out.Extractions = append(out.Extractions, table.Extract(text))
	}
	out.Verdict = dateparse.CheckConsistency(out.Extractions...)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
}
