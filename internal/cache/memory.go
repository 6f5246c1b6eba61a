package cache

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used when no persistent backend is configured.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

func (m *MemoryStore) Get(_ context.Context, ticker string) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[ticker]
	if !ok {
		return nil, nil
	}
	out := e
	out.Payload = append([]byte(nil), e.Payload...)
	return &out, nil
}

func (m *MemoryStore) Set(_ context.Context, e *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *e
	stored.Payload = append([]byte(nil), e.Payload...)
	m.entries[e.Ticker] = stored
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, ticker string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, ticker)
	return nil
}

func (m *MemoryStore) Close() error { return nil }
