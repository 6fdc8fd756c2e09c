package fetch

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

// pageStore is a URL-keyed byte store on a single SQLite file.
//
// Design decision: We use SQLite rather than a flat-file layout because
// a single database file is trivial to point DAFT2TRELLO_CACHEFILE at,
// survives arbitrary URL characters without path-escaping concerns, and
// can be inspected with standard sqlite tooling.
type pageStore struct {
	// db is the underlying SQL database connection.
	db *sql.DB
}

// openPageStore opens or creates the page store at the given path.
// The schema is bootstrapped on every open; CREATE TABLE IF NOT EXISTS
// makes that idempotent.
func openPageStore(path string) (*pageStore, error) {
	db, err := sql.Open("sqlite", path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache store: %w", err)
	}

	// SQLite only supports one writer; the store is short-lived anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	schema := `
	CREATE TABLE IF NOT EXISTS pages (
		url BLOB PRIMARY KEY,
		body BLOB NOT NULL,
		fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}

	return &pageStore{db: db}, nil
}

// Close closes the store.
func (s *pageStore) Close() error {
	return s.db.Close()
}

// Get returns the cached body for the URL and whether it was present.
// Keys are the byte encoding of the URL string.
func (s *pageStore) Get(ctx context.Context, url string) ([]byte, bool, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM pages WHERE url = ?`, []byte(url),
	).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry: %w", err)
	}
	return body, true, nil
}

// Put stores the body under the URL key, replacing any previous entry.
func (s *pageStore) Put(ctx context.Context, url string, body []byte) error {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO pages (url, body) VALUES (?, ?)
	ON CONFLICT(url) DO UPDATE SET
		body = excluded.body,
		fetched_at = CURRENT_TIMESTAMP
	`, []byte(url), body)
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
