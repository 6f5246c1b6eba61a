package cache

import (
	"context"
	"time"
)

// Entry is one cached provider payload.
type Entry struct {
	Ticker   string    `json:"ticker"`
	StoredAt time.Time `json:"stored_at"`
	Payload  []byte    `json:"payload"`
}

// Store is the key-value substrate for cached provider responses.
// Get returns (nil, nil) when no entry exists for the ticker.
// Expiry policy is owned by the caller, not the store.
type Store interface {
	Get(ctx context.Context, ticker string) (*Entry, error)
	Set(ctx context.Context, e *Entry) error
	Delete(ctx context.Context, ticker string) error
	Close() error
}
