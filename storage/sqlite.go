// Package storage provides a SQLite-based implementation of the Storage interface.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/nwilmet-vivlio/swift-toolkit/settings"
)

const (
	sqliteCreateTableSQL = `
		CREATE TABLE IF NOT EXISTS reading_preferences (
			user_id TEXT NOT NULL,
			publication_id TEXT NOT NULL,
			preferences TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, publication_id)
		);
	`

	sqliteInsertSQL = `
		INSERT INTO reading_preferences (user_id, publication_id, preferences, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, publication_id)
		DO UPDATE SET preferences = ?, updated_at = ?
	`

	sqliteSelectSQL = `
		SELECT user_id, publication_id, preferences, updated_at
		FROM reading_preferences
		WHERE user_id = ? AND publication_id = ?
	`

	sqliteSelectAllSQL = `
		SELECT user_id, publication_id, preferences, updated_at
		FROM reading_preferences
		WHERE user_id = ?
	`

	sqliteDeleteSQL = `
		DELETE FROM reading_preferences
		WHERE user_id = ? AND publication_id = ?
	`
)

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage initializes a new SQLiteStorage instance. It connects
// to the SQLite database at the specified path and runs migrations.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	storage := &SQLiteStorage{db: db}
	if err := storage.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return storage, nil
}

// migrate runs the necessary database migrations.
func (s *SQLiteStorage) migrate() error {
	_, err := s.db.Exec(sqliteCreateTableSQL)
	return err
}

// Get retrieves the record for a given user and publication. It returns
// settings.ErrNotFound if no preferences were stored.
func (s *SQLiteStorage) Get(ctx context.Context, userID, publicationID string) (*settings.Record, error) {
	var rec settings.Record
	var prefs string

	err := s.db.QueryRowContext(ctx, sqliteSelectSQL, userID, publicationID).Scan(
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

	rec.Preferences = []byte(prefs)
	return &rec, nil
}

// Set stores or updates a record.
func (s *SQLiteStorage) Set(ctx context.Context, rec *settings.Record) error {
	prefs := string(rec.Preferences)

	_, err := s.db.ExecContext(ctx, sqliteInsertSQL,
		rec.UserID,
		rec.PublicationID,
		prefs,
		rec.UpdatedAt,
		prefs,
		rec.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to set preferences: %w", err)
	}

	return nil
}

// GetAll retrieves every record stored for a user, keyed by publication.
func (s *SQLiteStorage) GetAll(ctx context.Context, userID string) (map[string]*settings.Record, error) {
	rows, err := s.db.QueryContext(ctx, sqliteSelectAllSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query preferences: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanRecords(rows)
}

// Delete removes the record for a given user and publication. It returns
// settings.ErrNotFound if no preferences were stored.
func (s *SQLiteStorage) Delete(ctx context.Context, userID, publicationID string) error {
	result, err := s.db.ExecContext(ctx, sqliteDeleteSQL, userID, publicationID)
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
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// scanRecords collects query rows into a map keyed by publication.
func scanRecords(rows *sql.Rows) (map[string]*settings.Record, error) {
	out := make(map[string]*settings.Record)
	for rows.Next() {
		var rec settings.Record
		var prefs string
		if err := rows.Scan(&rec.UserID, &rec.PublicationID, &prefs, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan preferences: %w", err)
		}
		rec.Preferences = []byte(prefs)
		out[rec.PublicationID] = &rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate preferences: %w", err)
	}
	return out, nil
}
