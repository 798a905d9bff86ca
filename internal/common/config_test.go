package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"DB_URL", "DB_MAX_CONNS", "GRPC_ADDR", "OPENAI_BASE_URL", "OPENAI_MODEL",
		"OPENAI_API_KEY", "OPENAI_TIMEOUT", "OCR_LANGUAGE", "MIN_OCR_CONFIDENCE",
		"MIN_DATE_CONFIDENCE", "QUEUE_WORKERS", "QUEUE_SIZE", "QUEUE_PROCESS_TIMEOUT",
		"WATCH_DIRS", "WATCH_INITIAL_SCAN", "WATCH_DEBOUNCE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Inference.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.Inference.Model)
	assert.Equal(t, 60*time.Second, cfg.Inference.Timeout)
	assert.Equal(t, "en", cfg.Inference.Language)
	assert.Equal(t, []string{"Header", "Body", "Footer"}, cfg.Analysis.Regions)
	assert.Equal(t, float32(0.5), cfg.Analysis.MinOCRConfidence)
	assert.Equal(t, 4, cfg.Analysis.Workers)
	assert.Empty(t, cfg.Ingest.WatchDirs)
	assert.True(t, cfg.Ingest.InitialScan)
	assert.Equal(t, 500*time.Millisecond, cfg.Ingest.Debounce)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/docverify")
	t.Setenv("GRPC_ADDR", ":9090")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("OPENAI_TIMEOUT", "15s")
	t.Setenv("QUEUE_WORKERS", "8")
	t.Setenv("MIN_OCR_CONFIDENCE", "0.7")
	t.Setenv("WATCH_DIRS", "/in/scans, /in/faxes,")
	t.Setenv("WATCH_INITIAL_SCAN", "false")

	cfg := LoadConfig()

	assert.Equal(t, "postgres://localhost/docverify", cfg.Database.DSN)
	assert.Equal(t, ":9090", cfg.Server.GRPCAddr)
	assert.Equal(t, "gpt-4o", cfg.Inference.Model)
	assert.Equal(t, 15*time.Second, cfg.Inference.Timeout)
	assert.Equal(t, 8, cfg.Analysis.Workers)
	assert.Equal(t, float32(0.7), cfg.Analysis.MinOCRConfidence)
	assert.Equal(t, []string{"/in/scans", "/in/faxes"}, cfg.Ingest.WatchDirs)
	assert.False(t, cfg.Ingest.InitialScan)
}

func TestLoadFromFile(t *testing.T) {
	t.Run("merges overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "docverify.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"regions:\n  - header\n  - footer\nmin_date_confidence: 0.75\nworkers: 2\n",
		), 0o644))

		cfg := LoadConfig()
		require.NoError(t, cfg.LoadFromFile(path))

		assert.Equal(t, []string{"Header", "Footer"}, cfg.Analysis.Regions)
		assert.Equal(t, 0.75, cfg.Analysis.MinDateConfidence)
		assert.Equal(t, 2, cfg.Analysis.Workers)
	})

	t.Run("region synonyms canonicalized", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "docverify.yaml")
		require.NoError(t, os.WriteFile(path, []byte("regions:\n  - letterhead\n  - signature\n"), 0o644))

		cfg := LoadConfig()
		require.NoError(t, cfg.LoadFromFile(path))
		assert.Equal(t, []string{"Header", "Footer"}, cfg.Analysis.Regions)
	})

	t.Run("unknown region rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "docverify.yaml")
		require.NoError(t, os.WriteFile(path, []byte("regions:\n  - margin\n"), 0o644))

		cfg := LoadConfig()
		assert.Error(t, cfg.LoadFromFile(path))
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := LoadConfig()
		assert.Error(t, cfg.LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml")))
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "docverify.yaml")
		require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

		cfg := LoadConfig()
		require.NoError(t, cfg.LoadFromFile(path))
		assert.Equal(t, []string{"Header", "Body", "Footer"}, cfg.Analysis.Regions)
	})
}

func TestConfigValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Database:  DatabaseConfig{DSN: "postgres://localhost/docverify"},
			Server:    ServerConfig{GRPCAddr: ":8080"},
			Inference: InferenceConfig{APIKey: "sk-test"},
			Analysis:  AnalysisConfig{Regions: []string{"Body"}},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing dsn", func(t *testing.T) {
		cfg := base()
		cfg.Database.DSN = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing api key", func(t *testing.T) {
		cfg := base()
		cfg.Inference.APIKey = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("no regions", func(t *testing.T) {
		cfg := base()
		cfg.Analysis.Regions = nil
		assert.Error(t, cfg.Validate())
	})
}
