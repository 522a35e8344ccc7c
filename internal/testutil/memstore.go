package testutil

import (
	"context"
	"errors"
	"sync"
)

// MemStore — in-memory ContentStore для тестов хендлеров.
type MemStore struct {
	mu   sync.Mutex
	data map[string][]byte
	seq  map[string]int64

	FailGet bool
	FailSet bool
}

func NewMemStore() *MemStore {
	return &MemStore{
		data: make(map[string][]byte),
		seq:  make(map[string]int64),
	}
}

func (m *MemStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGet {
		return nil, errors.New("store unavailable")
	}
	b, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, nil
}

func (m *MemStore) Set(_ context.Context, key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet {
		return errors.New("store unavailable")
	}
	cp := make([]byte, len(val))
	copy(cp, val)
	m.data[key] = cp
	return nil
}

func (m *MemStore) Incr(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq[key]++
	return m.seq[key], nil
}

func (m *MemStore) Ping(context.Context) error { return nil }
func (m *MemStore) Close()                     {}

// Raw отдаёт сохранённое значение как есть (nil, если ключа нет).
func (m *MemStore) Raw(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key]
}
