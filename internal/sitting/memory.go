package sitting

import (
	"context"
	"sync"
	"time"
)

const dayLayout = "2006-01-02"

// MemoryStore keeps sitting dates for the life of the process.
type MemoryStore struct {
	dates map[string]time.Time
	mu    sync.RWMutex
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{dates: make(map[string]time.Time)}
}

// GetSittingDate returns the stored sitting date for day.
func (m *MemoryStore) GetSittingDate(_ context.Context, day time.Time) (time.Time, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sitting, ok := m.dates[day.Format(dayLayout)]
	return sitting, ok, nil
}

// SaveSittingDate stores the sitting date for day.
func (m *MemoryStore) SaveSittingDate(_ context.Context, day, sitting time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dates[day.Format(dayLayout)] = sitting
	return nil
}

// ClearSittingDates empties the store.
func (m *MemoryStore) ClearSittingDates(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dates = make(map[string]time.Time)
	return nil
}

// Len returns the number of stored days.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.dates)
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
