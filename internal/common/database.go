package common

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkspect/docverify/gen/ent"
	"github.com/inkspect/docverify/internal/repository"
)

// DBResult bundles the opened audit-store handles with their teardown.
// Pool is nil for the embedded SQLite store.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool
	Cleanup func()
}

// InitDatabase opens the audit store: embedded SQLite when inmem is set,
// otherwise the configured Postgres (with a connectivity check).
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if inmem {
		client, err := repository.OpenSQLite(ctx, "", logger)
		if err != nil {
			return nil, WrapError(err, "open embedded audit store")
		}
		return &DBResult{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close ent client", "error", err)
				}
			},
		}, nil
	}

	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, WrapError(err, "open audit store")
	}
	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		repository.Close(client, pool, logger)
		return nil, WrapError(err, "audit store health check")
	}
	return &DBResult{
		Client:  client,
		Pool:    pool,
		Cleanup: func() { repository.Close(client, pool, logger) },
	}, nil
}
