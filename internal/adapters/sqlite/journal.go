// Package sqlite provides a SQLite-backed implementation of the journal port.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/charanteja2729/mood-based-song-recommender/internal/core/domain"
	"github.com/charanteja2729/mood-based-song-recommender/internal/core/ports"
)

// Adapter implements the journal port for SQLite.
type Adapter struct {
	db *sql.DB
}

// compile-time interface assertion
var _ ports.Journal = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration.
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	// Verify connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}
	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully.
func (a *Adapter) Close() error {
	return a.db.Close()
}

func (a *Adapter) migrate() error {
	_, err := a.db.Exec(`
		CREATE TABLE IF NOT EXISTS predictions (
			id            TEXT PRIMARY KEY,
			request_id    TEXT,
			detected_mood TEXT NOT NULL,
			search_mood   TEXT NOT NULL,
			query         TEXT NOT NULL,
			song_count    INTEGER NOT NULL,
			created_at    TIMESTAMP NOT NULL
		)
	`)
	return err
}

// Record inserts one prediction journal entry.
func (a *Adapter) Record(ctx context.Context, entry ports.JournalEntry) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO predictions (id, request_id, detected_mood, search_mood, query, song_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		entry.ID,
		entry.RequestID,
		string(entry.DetectedMood),
		string(entry.SearchMood),
		entry.Query,
		entry.SongCount,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record prediction: %w", err)
	}
	return nil
}

// Recent returns the latest n journal entries, newest first. It exists for
// operator tooling and tests; request handling never reads the journal.
func (a *Adapter) Recent(ctx context.Context, n int) ([]ports.JournalEntry, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, request_id, detected_mood, search_mood, query, song_count, created_at
		FROM predictions
		ORDER BY created_at DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to load predictions: %w", err)
	}
	defer rows.Close()

	var entries []ports.JournalEntry
	for rows.Next() {
		var entry ports.JournalEntry
		var detected, search string
		if err := rows.Scan(&entry.ID, &entry.RequestID, &detected, &search, &entry.Query, &entry.SongCount, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		entry.DetectedMood = domain.Mood(detected)
		entry.SearchMood = domain.SearchMood(search)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
