package claims

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists the claim journal to SQLite.
// It is suitable for single-process production use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore creates a new SQLite claim journal.
// The path should be a file path (e.g., "./claims.db") or ":memory:" for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single connection keeps ":memory:" databases coherent across queries.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS claim_events (
			id TEXT PRIMARY KEY,
			seq INTEGER NOT NULL,
			resource TEXT NOT NULL,
			owner TEXT NOT NULL,
			action TEXT NOT NULL,
			timestamp TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_claim_events_resource
		ON claim_events(resource)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Append implements Store.
func (s *SQLiteStore) Append(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.Exec(`
		INSERT INTO claim_events (id, seq, resource, owner, action, timestamp)
		VALUES (
			?,
			COALESCE((SELECT MAX(seq) FROM claim_events WHERE resource = ?), 0) + 1,
			?, ?, ?, ?
		)
	`, ev.ID, ev.Resource, ev.Resource, ev.Owner, string(ev.Action),
		ev.Timestamp.UTC().Format(time.RFC3339Nano))

	if err != nil {
		return fmt.Errorf("append claim event: %w", err)
	}
	return nil
}

// Events implements Store.
func (s *SQLiteStore) Events(resource string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT id, owner, action, timestamp
		FROM claim_events
		WHERE resource = ?
		ORDER BY seq
	`, resource)
	if err != nil {
		return nil, fmt.Errorf("list claim events: %w", err)
	}
	defer rows.Close()

	events := make([]Event, 0)
	for rows.Next() {
		var ev Event
		var action, timestamp string
		if err := rows.Scan(&ev.ID, &ev.Owner, &action, &timestamp); err != nil {
			return nil, fmt.Errorf("scan claim event: %w", err)
		}
		ev.Resource = resource
		ev.Action = Action(action)
		ev.Timestamp, _ = time.Parse(time.RFC3339Nano, timestamp)
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate claim events: %w", err)
	}

	return events, nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
