package storage

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryBackend is an in-process Backend. With a quota it behaves like a
// size-limited browser store and rejects writes that would exceed it.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	quota   int
	nowFunc func() time.Time
}

// MemoryOption configures a MemoryBackend
type MemoryOption func(*MemoryBackend)

// WithQuota limits the total size in bytes of keys plus values.
func WithQuota(bytes int) MemoryOption {
	return func(m *MemoryBackend) {
		m.quota = bytes
	}
}

// WithClock overrides the clock used for expirations. Useful for testing.
func WithClock(nowFunc func() time.Time) MemoryOption {
	return func(m *MemoryBackend) {
		m.nowFunc = nowFunc
	}
}

// NewMemoryBackend creates an empty MemoryBackend
func NewMemoryBackend(opts ...MemoryOption) *MemoryBackend {
	m := &MemoryBackend{
		entries: make(map[string]memoryEntry),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MemoryBackend) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[key]
	if !ok || entry.expired(m.nowFunc()) {
		return "", false, nil
	}
	return entry.value, true, nil
}

func (m *MemoryBackend) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.quota > 0 {
		used := m.usedLocked() - m.sizeOfLocked(key) + len(key) + len(value)
		if used > m.quota {
			return ErrQuotaExceeded
		}
	}

	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.nowFunc().Add(ttl)
	}
	m.entries[key] = entry
	return nil
}

func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

func (m *MemoryBackend) Ping(context.Context) error {
	return nil
}

// Len returns the number of live keys
func (m *MemoryBackend) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := m.nowFunc()
	count := 0
	for _, entry := range m.entries {
		if !entry.expired(now) {
			count++
		}
	}
	return count
}

func (m *MemoryBackend) usedLocked() int {
	used := 0
	for key, entry := range m.entries {
		used += len(key) + len(entry.value)
	}
	return used
}

func (m *MemoryBackend) sizeOfLocked(key string) int {
	entry, ok := m.entries[key]
	if !ok {
		return 0
	}
	return len(key) + len(entry.value)
}
