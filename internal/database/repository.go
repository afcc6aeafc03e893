package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("not found")

// Repository handles all database operations. Every query is parameterized;
// the API layer never writes.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Connect opens a pgx pool against the configured database and verifies
// connectivity with a ping.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// CountRows returns the row count of one of the served tables. Used by the
// health endpoints as a connectivity probe.
func (r *Repository) CountRows(ctx context.Context, table string) (int, error) {
	var query string
	switch table {
	case "flights":
		query = "SELECT COUNT(*) FROM flights"
	case "passengers":
		query = "SELECT COUNT(*) FROM passengers"
	case "crew":
		query = "SELECT COUNT(*) FROM crew"
	case "crew_assignments":
		query = "SELECT COUNT(*) FROM crew_assignments"
	default:
		return 0, fmt.Errorf("unknown table: %s", table)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}
