package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/inkspect/docverify/constants"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Inference InferenceConfig
	Analysis  AnalysisConfig
	Ingest    IngestConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// InferenceConfig holds hosted-endpoint configuration for the OCR client.
type InferenceConfig struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float32
	Timeout     time.Duration
	Language    string
}

// AnalysisConfig holds verification pipeline tuning.
type AnalysisConfig struct {
	Regions           []string // document regions read independently
	MinOCRConfidence  float32  // below this a job is flagged for review
	MinDateConfidence float64  // below this the winning date is flagged for review
	Workers           int
	QueueSize         int
	ProcessTimeout    time.Duration
}

// IngestConfig holds directory-watch settings. An empty WatchDirs disables
// the watcher.
type IngestConfig struct {
	WatchDirs   []string
	InitialScan bool
	Debounce    time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Inference: InferenceConfig{
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 60*time.Second),
			Language:    getEnv("OCR_LANGUAGE", "en"),
		},
		Analysis: AnalysisConfig{
			Regions:           constants.AsStringSlice(),
			MinOCRConfidence:  getEnvAsFloat32("MIN_OCR_CONFIDENCE", 0.5),
			MinDateConfidence: float64(getEnvAsFloat32("MIN_DATE_CONFIDENCE", 0.6)),
			Workers:           getEnvAsInt("QUEUE_WORKERS", 4),
			QueueSize:         getEnvAsInt("QUEUE_SIZE", 256),
			ProcessTimeout:    getEnvAsDuration("QUEUE_PROCESS_TIMEOUT", 3*time.Minute),
		},
		Ingest: IngestConfig{
			WatchDirs:   getEnvAsList("WATCH_DIRS"),
			InitialScan: getEnvAsBool("WATCH_INITIAL_SCAN", true),
			Debounce:    getEnvAsDuration("WATCH_DEBOUNCE", 500*time.Millisecond),
		},
	}
}

// yamlConfig is the on-disk YAML structure for optional tuning overrides.
type yamlConfig struct {
	Regions           []string `yaml:"regions"`
	MinOCRConfidence  *float32 `yaml:"min_ocr_confidence"`
	MinDateConfidence *float64 `yaml:"min_date_confidence"`
	Workers           *int     `yaml:"workers"`
	QueueSize         *int     `yaml:"queue_size"`
}

// LoadFromFile reads a YAML tuning file and merges its values into Config.
// Only analysis knobs live in the file; connection settings stay env-driven.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if len(yc.Regions) > 0 {
		regions := make([]string, 0, len(yc.Regions))
		for _, raw := range yc.Regions {
			r, ok := constants.CanonicalizeRegion(raw)
			if !ok {
				return fmt.Errorf("unknown region %q in config", raw)
			}
			regions = append(regions, string(r))
		}
		c.Analysis.Regions = regions
	}
	if yc.MinOCRConfidence != nil {
		c.Analysis.MinOCRConfidence = *yc.MinOCRConfidence
	}
	if yc.MinDateConfidence != nil {
		c.Analysis.MinDateConfidence = *yc.MinDateConfidence
	}
	if yc.Workers != nil {
		c.Analysis.Workers = *yc.Workers
	}
	if yc.QueueSize != nil {
		c.Analysis.QueueSize = *yc.QueueSize
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated variable, dropping empty entries.
func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Inference.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if len(c.Analysis.Regions) == 0 {
		return NewAppError("CONFIG_ERROR", "at least one analysis region is required", ErrInvalidInput)
	}
	return nil
}
