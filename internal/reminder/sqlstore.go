package reminder

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore provides SQLite-backed storage for the item collection.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the SQLite database at dbPath and
// ensures the items table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createTable(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func createTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS items (
			position    INTEGER NOT NULL,
			id          TEXT    PRIMARY KEY,
			type        TEXT    NOT NULL,
			title       TEXT    NOT NULL,
			category    TEXT    NOT NULL,
			date        TEXT    NOT NULL DEFAULT '',
			time        TEXT    NOT NULL DEFAULT '',
			created_at  TEXT    NOT NULL,
			alarm_sent  INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load returns all items in their saved order.
func (s *SQLiteStore) Load(ctx context.Context) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, title, category, date, time, created_at, alarm_sent
		FROM items ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var rec record
		var kind, category, createdAt string
		var alarmSent bool

		if err := rows.Scan(&rec.ID, &kind, &rec.Title, &category,
			&rec.Date, &rec.Time, &createdAt, &alarmSent); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}

		rec.Type = Kind(kind)
		rec.Category = Category(category)
		created, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("item %s has invalid created_at %q: %w", rec.ID, createdAt, err)
		}
		rec.CreatedAt = created
		rec.AlarmSent = &alarmSent

		it, err := rec.toItem()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Save replaces every row inside one transaction.
func (s *SQLiteStore) Save(ctx context.Context, items []Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO items (position, id, type, title, category, date, time, created_at, alarm_sent)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, it := range items {
		rec := toRecord(it)
		alarmSent := rec.AlarmSent != nil && *rec.AlarmSent
		if _, err := stmt.ExecContext(ctx, i, rec.ID, string(rec.Type), rec.Title, string(rec.Category),
			rec.Date, rec.Time, rec.CreatedAt.Format(time.RFC3339Nano), alarmSent); err != nil {
			return fmt.Errorf("failed to insert item %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit items: %w", err)
	}
	return nil
}
