package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"hometheater_quote/internal/infrastructure/config"
)

const serviceRequestsSchema = `
CREATE TABLE IF NOT EXISTS service_requests (
    id          BIGSERIAL PRIMARY KEY,
    name        TEXT        NOT NULL,
    phone       TEXT        NOT NULL,
    email       TEXT        NULL,
    selections  TEXT        NOT NULL,
    notes       TEXT        NULL,
    total_price BIGINT      NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// ConnectPostgres opens a pooled connection and checks it is reachable.
func ConnectPostgres(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the service_requests table when it is missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, serviceRequestsSchema); err != nil {
		return fmt.Errorf("failed to create service_requests table: %w", err)
	}
	return nil
}
