package cache

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists cached provider payloads to a SQLite database,
// so a rerun within the TTL skips the network even across process restarts.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite cache opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS quote_cache (
		ticker    TEXT PRIMARY KEY,
		stored_at INTEGER NOT NULL,
		payload   BLOB NOT NULL
	)`)
	return err
}

func (s *SQLiteStore) Get(ctx context.Context, ticker string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var storedAt int64
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT stored_at, payload FROM quote_cache WHERE ticker = ?`, ticker).
		Scan(&storedAt, &payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite get %s: %w", ticker, err)
	}
	return &Entry{Ticker: ticker, StoredAt: time.Unix(storedAt, 0), Payload: payload}, nil
}

func (s *SQLiteStore) Set(ctx context.Context, e *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO quote_cache (ticker, stored_at, payload) VALUES (?,?,?)
		 ON CONFLICT(ticker) DO UPDATE SET stored_at=excluded.stored_at, payload=excluded.payload`,
		e.Ticker, e.StoredAt.Unix(), e.Payload)
	if err != nil {
		return fmt.Errorf("sqlite set %s: %w", e.Ticker, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, ticker string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM quote_cache WHERE ticker = ?`, ticker); err != nil {
		return fmt.Errorf("sqlite delete %s: %w", ticker, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite cache")
	return s.db.Close()
}
