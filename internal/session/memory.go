package session

import (
	"context"
	"sync"
	"time"

	"blackjack-table/internal/game"
)

type memoryEntry struct {
	data    []byte
	touched time.Time
}

// MemoryStore keeps encoded rounds in a map, so every Get hands out an
// independent copy just like the persistent stores do.
type MemoryStore struct {
	mu     sync.RWMutex
	rounds map[int64]memoryEntry
	ttl    time.Duration
	now    func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		rounds: make(map[int64]memoryEntry),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, chatID int64) (*game.Round, error) {
	m.mu.RLock()
	entry, ok := m.rounds[chatID]
	m.mu.RUnlock()

	if !ok || m.expired(entry) {
		return nil, ErrNotFound
	}
	return decode(entry.data)
}

func (m *MemoryStore) Save(_ context.Context, chatID int64, round *game.Round) error {
	data, err := encode(round)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[chatID] = memoryEntry{data: data, touched: m.now()}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rounds, chatID)
	return nil
}

func (m *MemoryStore) Sweep(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for chatID, entry := range m.rounds {
		if m.expired(entry) {
			delete(m.rounds, chatID)
			removed++
		}
	}
	return removed, nil
}

func (m *MemoryStore) Close() error {
	return nil
}

func (m *MemoryStore) expired(e memoryEntry) bool {
	return m.ttl > 0 && m.now().Sub(e.touched) > m.ttl
}
