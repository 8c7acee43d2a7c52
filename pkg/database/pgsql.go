package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pinger is the part of a pool the start-up loop and health check need.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewLazyPool creates a PostgreSQL connection pool without dialling.
// Connections are established on first use, so the process can start while
// the database is still unreachable.
func NewLazyPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 0
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = time.Minute
	config.ConnConfig.ConnectTimeout = 5 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	return pool, nil
}

// ConnectWithRetry pings db up to attempts times, sleeping delay between
// tries. It returns the last error once attempts are exhausted; callers keep
// serving in degraded mode in that case.
func ConnectWithRetry(ctx context.Context, db Pinger, attempts int, delay time.Duration, logger *slog.Logger) error {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = db.Ping(pingCtx)
		cancel()
		if err == nil {
			logger.Info("Database connection established", slog.Int("attempt", attempt))
			return nil
		}
		logger.Warn("Database connection attempt failed",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", attempts),
			slog.String("error", err.Error()))
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("database unreachable after %d attempts: %w", attempts, err)
}

// ClosePgxPool closes the PostgreSQL connection pool.
func ClosePgxPool(pool *pgxpool.Pool, logger *slog.Logger) {
	if pool != nil {
		pool.Close()
		logger.Info("PostgreSQL connection pool closed")
	}
}

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Health is the storage section of the health report.
type Health struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// DriverName names the storage variant a connection string points at.
func DriverName(databaseURL string) string {
	u := strings.ToLower(databaseURL)
	switch {
	case strings.HasPrefix(u, "postgres://"), strings.HasPrefix(u, "postgresql://"), strings.Contains(u, "host="):
		return "PostgreSQL"
	case strings.HasPrefix(u, "file:"), strings.HasPrefix(u, "sqlite"), strings.HasSuffix(u, ".db"):
		return "SQLite"
	}
	return "Unknown"
}

// CheckHealth pings the store. A nil db is reported unhealthy.
func CheckHealth(ctx context.Context, db Pinger, databaseURL string) Health {
	h := Health{Status: StatusUnhealthy, Database: DriverName(databaseURL)}
	if db == nil {
		return h
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := db.Ping(pingCtx); err == nil {
		h.Status = StatusHealthy
	}
	return h
}
