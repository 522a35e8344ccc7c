package testutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

// MemBlob — in-memory BlobStorage для тестов.
type MemBlob struct {
	mu           sync.Mutex
	Objects      map[string][]byte
	ContentTypes map[string]string
	BucketReady  bool
	EnsureCalls  int

	FailPut    bool
	FailEnsure bool
}

func NewMemBlob() *MemBlob {
	return &MemBlob{
		Objects:      make(map[string][]byte),
		ContentTypes: make(map[string]string),
	}
}

func (m *MemBlob) Put(_ context.Context, r io.Reader, key, contentType string, _ int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailPut {
		return errors.New("storage unavailable")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.Objects[key] = b
	m.ContentTypes[key] = contentType
	return nil
}

func (m *MemBlob) SignedURL(_ context.Context, key string, ttl time.Duration) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Objects[key]; !ok {
		return "", fmt.Errorf("object %q does not exist", key)
	}
	return fmt.Sprintf("https://blobs.test/%s?expires=%d", key, int(ttl.Seconds())), nil
}

func (m *MemBlob) EnsureBucket(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EnsureCalls++
	if m.FailEnsure {
		return errors.New("storage unavailable")
	}
	m.BucketReady = true
	return nil
}

func (m *MemBlob) Ping(context.Context) error { return nil }
