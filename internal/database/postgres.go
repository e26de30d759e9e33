package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/suar-net/food-relay/internal/config"
)

var relayHistorySchema = []string{
	`CREATE TABLE IF NOT EXISTS relay_history (
	id                   UUID PRIMARY KEY,
	kind                 TEXT NOT NULL,
	caller_id            TEXT NOT NULL,
	upstream_url         TEXT NOT NULL,
	upstream_status_code INTEGER,
	duration_ms          BIGINT NOT NULL,
	error                TEXT NOT NULL DEFAULT '',
	executed_at          TIMESTAMPTZ NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS relay_history_caller_idx ON relay_history (caller_id, executed_at DESC)`,
}

func ConnectDB(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to verify database connection: %w", err)
	}

	return db, nil
}

// Migrate creates the relay_history table if it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range relayHistorySchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate relay_history: %w", err)
		}
	}
	return nil
}
