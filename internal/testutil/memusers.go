package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vaibhavipujari/myportfolio/internal/domain"
)

// MemUsers — in-memory identity provider для тестов.
type MemUsers struct {
	mu      sync.Mutex
	byID    map[domain.UserID]domain.User
	Created int // сколько раз звали CreateUser успешно

	FailLookup bool
}

func NewMemUsers() *MemUsers {
	return &MemUsers{byID: make(map[domain.UserID]domain.User)}
}

func (m *MemUsers) Seed(u domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[u.ID] = u
}

func (m *MemUsers) Delete(id domain.UserID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
}

func (m *MemUsers) CreateUser(_ context.Context, email, name string, passHash []byte) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			return domain.User{}, fmt.Errorf("%w: duplicate email", domain.ErrBadParams)
		}
	}
	u := domain.User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		PassHash:  passHash,
		CreatedAt: time.Now().UTC(),
	}
	m.byID[u.ID] = u
	m.Created++
	return u, nil
}

func (m *MemUsers) UserByEmail(_ context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailLookup {
		return domain.User{}, fmt.Errorf("provider unavailable")
	}
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, fmt.Errorf("%w: no such email", domain.ErrNotFound)
}

func (m *MemUsers) UserByID(_ context.Context, id domain.UserID) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailLookup {
		return domain.User{}, fmt.Errorf("provider unavailable")
	}
	u, ok := m.byID[id]
	if !ok {
		return domain.User{}, fmt.Errorf("%w: no such id", domain.ErrNotFound)
	}
	return u, nil
}

func (m *MemUsers) Ping(context.Context) error { return nil }
func (m *MemUsers) Close()                     {}
