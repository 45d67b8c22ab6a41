package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"housing-agent/domain"
)

const createEventsTable = `
CREATE TABLE IF NOT EXISTS interaction_events (
	id         TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	user_id    TEXT NOT NULL,
	kind       TEXT NOT NULL,
	payload    JSONB,
	created_at TIMESTAMPTZ NOT NULL
)`

// PostgresHistoryRepository implements HistoryRepository backed by a
// PostgreSQL warehouse.
type PostgresHistoryRepository struct {
	db *sql.DB
}

// NewPostgresHistoryRepository opens the warehouse connection, verifies it
// and ensures the events table exists.
func NewPostgresHistoryRepository(dsn string) (*PostgresHistoryRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open warehouse connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("warehouse unreachable: %w", err)
	}
	if _, err := db.Exec(createEventsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure events table: %w", err)
	}
	return &PostgresHistoryRepository{db: db}, nil
}

// SaveEvent inserts one interaction event, serializing its payload to JSON.
func (r *PostgresHistoryRepository) SaveEvent(ctx context.Context, event domain.InteractionEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("failed to serialize event payload: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO interaction_events (id, session_id, user_id, kind, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, event.ID, event.SessionID, event.UserID, event.Kind, payload, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (r *PostgresHistoryRepository) Close() error {
	return r.db.Close()
}
