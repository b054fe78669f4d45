package audit

import (
	"context"
	"sync"
)

//MemoryStore represents a Store that keeps the most recent entries in memory
type MemoryStore struct {
	entries []*Entry
	size    int
	mu      *sync.Mutex
}

//NewMemoryStore returns a new MemoryStore holding at most size entries.
//If size is less than 1, entries are never discarded.
func NewMemoryStore(size int) *MemoryStore {
	return &MemoryStore{size: size, mu: new(sync.Mutex)}
}

//Record saves a copy of entry, discarding the oldest entry if the store is full. err will always be nil.
func (m *MemoryStore) Record(ctx context.Context, entry *Entry) error {
	e := *entry
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, &e)
	if m.size > 0 && len(m.entries) > m.size {
		m.entries = m.entries[len(m.entries)-m.size:]
	}
	return nil
}

//Entries returns the recorded entries, oldest first
func (m *MemoryStore) Entries() []*Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := make([]*Entry, len(m.entries))
	copy(entries, m.entries)
	return entries
}

//Recent returns the most recent limit entries, newest first. err will always be nil.
func (m *MemoryStore) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	if limit < 0 {
		limit = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := make([]*Entry, 0, limit)
	for i := len(m.entries) - 1; i >= 0 && len(entries) < limit; i-- {
		entries = append(entries, m.entries[i])
	}
	return entries, nil
}
