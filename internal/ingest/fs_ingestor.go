package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/inkspect/docverify/constants"
	"github.com/inkspect/docverify/internal/repository"
)

// FSIngestor reads from the local filesystem.
type FSIngestor struct {
	Docs        repository.DocumentRepository
	AllowedExts map[string]struct{} // lowercased sans '.'; nil -> default set
}

func NewFSIngestor(docs repository.DocumentRepository) *FSIngestor {
	return &FSIngestor{Docs: docs}
}

func (i *FSIngestor) allowedExt(ext string) bool {
	if i.AllowedExts != nil {
		_, ok := i.AllowedExts[constants.NormalizeExt(ext)]
		return ok
	}
	return AllowedExt(ext)
}

func (i *FSIngestor) IngestPath(ctx context.Context, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		log.Printf("abs path error: %v", err)
		return out, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !i.allowedExt(ext) {
		log.Printf("unsupported or missing extension: %q", ext)
		return out, fmt.Errorf("unsupported or missing extension")
	}

	f, err := os.Open(abs)
	if err != nil {
		log.Printf("open error: %v", err)
		return out, err
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			log.Printf("close file error: %v", err)
		}
	}(f)

	st, err := f.Stat()
	if err != nil {
		log.Printf("stat error: %v", err)
		return out, err
	}

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		log.Printf("hash error: %v", err)
		return out, err
	}
	sum := h.Sum(nil)
	now := time.Now().UTC()

	row, dedup, err := i.Docs.UpsertByHash(ctx, abs, filepath.Base(abs), ext, int(st.Size()), sum, now)
	if err != nil {
		return out, err
	}

	out = IngestionResult{
		SourcePath:   row.SourcePath,
		DocumentID:   row.ID.String(),
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum),
		FileExt:      row.FileExt,
		FileSize:     row.FileSize,
		UploadedAt:   row.UploadedAt,
	}
	return out, nil
}

// IngestDirectory walks root, skips hidden if requested,
// and calls IngestPath for each file. Returns per-file results + aggregate stats.
func (i *FSIngestor) IngestDirectory(
	ctx context.Context,
	root string,
	skipHidden bool,
) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !i.allowedExt(ext) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}
