// Package history keeps an optional Postgres record of generated
// documents so repeated runs against the same postings are visible.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Entry is one generated document.
type Entry struct {
	RunID      string
	Link       string
	Company    string
	Title      string
	Terms      int
	OutputPath string
	CreatedAt  time.Time
}

// Store wraps the history database. A nil *Store is a valid no-op
// store, so callers can thread it through unconditionally.
type Store struct {
	db *sql.DB
}

// Open connects to Postgres and ensures the schema exists.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS generated_documents (
			id SERIAL PRIMARY KEY,
			run_id TEXT NOT NULL,
			link TEXT,
			company TEXT,
			title TEXT,
			terms INTEGER,
			output_path TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record inserts one generated-document row.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if s == nil {
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO generated_documents (run_id, link, company, title, terms, output_path)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, e.RunID, e.Link, e.Company, e.Title, e.Terms, e.OutputPath)
	if err != nil {
		return fmt.Errorf("recording generated document: %w", err)
	}
	return nil
}

// Recent returns the latest entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if s == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, COALESCE(link, ''), COALESCE(company, ''), COALESCE(title, ''),
		       COALESCE(terms, 0), COALESCE(output_path, ''), created_at
		FROM generated_documents
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.RunID, &e.Link, &e.Company, &e.Title, &e.Terms, &e.OutputPath, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}
