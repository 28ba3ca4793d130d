// Package storage provides a PostgreSQL-based implementation of the Storage interface.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/nwilmet-vivlio/swift-toolkit/settings"
)

const (
	postgresCreateTableSQL = `
		CREATE TABLE IF NOT EXISTS reading_preferences (
			user_id TEXT NOT NULL,
			publication_id TEXT NOT NULL,
			preferences JSONB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, publication_id)
		);
	`

	postgresInsertSQL = `
		INSERT INTO reading_preferences (user_id, publication_id, preferences, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, publication_id)
		DO UPDATE SET preferences = $3, updated_at = $4
	`

	postgresSelectSQL = `
		SELECT user_id, publication_id, preferences, updated_at
		FROM reading_preferences
		WHERE user_id = $1 AND publication_id = $2
	`

	postgresSelectAllSQL = `
		SELECT user_id, publication_id, preferences, updated_at
		FROM reading_preferences
		WHERE user_id = $1
	`

	postgresDeleteSQL = `
		DELETE FROM reading_preferences
		WHERE user_id = $1 AND publication_id = $2
	`
)

// PostgresStorage implements the Storage interface using PostgreSQL.
type PostgresStorage struct {
	db *sql.DB
}

// NewPostgresStorage initializes a new PostgresStorage instance. It
// connects with the given DSN and runs migrations.
func NewPostgresStorage(dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres database: %w", err)
	}

	storage := &PostgresStorage{db: db}
	if err := storage.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return storage, nil
}

// migrate runs the necessary database migrations.
func (s *PostgresStorage) migrate() error {
	_, err := s.db.Exec(postgresCreateTableSQL)
	return err
}

// Get retrieves the record for a given user and publication. It returns
// settings.ErrNotFound if no preferences were stored.
func (s *PostgresStorage) Get(ctx context.Context, userID, publicationID string) (*settings.Record, error) {
	var rec settings.Record
	var prefs []byte

	err := s.db.QueryRowContext(ctx, postgresSelectSQL, userID, publicationID).Scan(
		&rec.UserID,
		&rec.PublicationID,
		&prefs,
		&rec.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, settings.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	rec.Preferences = prefs
	return &rec, nil
}

// Set stores or updates a record.
func (s *PostgresStorage) Set(ctx context.Context, rec *settings.Record) error {
	_, err := s.db.ExecContext(ctx, postgresInsertSQL,
		rec.UserID,
		rec.PublicationID,
		[]byte(rec.Preferences),
		rec.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to set preferences: %w", err)
	}

	return nil
}

// GetAll retrieves every record stored for a user, keyed by publication.
func (s *PostgresStorage) GetAll(ctx context.Context, userID string) (map[string]*settings.Record, error) {
	rows, err := s.db.QueryContext(ctx, postgresSelectAllSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query preferences: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	out := make(map[string]*settings.Record)
	for rows.Next() {
		var rec settings.Record
		var prefs []byte
		if err := rows.Scan(&rec.UserID, &rec.PublicationID, &prefs, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan preferences: %w", err)
		}
		rec.Preferences = prefs
		out[rec.PublicationID] = &rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate preferences: %w", err)
	}
	return out, nil
}

// Delete removes the record for a given user and publication. It returns
// settings.ErrNotFound if no preferences were stored.
func (s *PostgresStorage) Delete(ctx context.Context, userID, publicationID string) error {
	result, err := s.db.ExecContext(ctx, postgresDeleteSQL, userID, publicationID)
	if err != nil {
		return fmt.Errorf("failed to delete preferences: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return settings.ErrNotFound
	}

	return nil
}

// Close releases the underlying database handle.
func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
