package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/vaibhavipujari/myportfolio/internal/domain"
)

// StaticTokens — TokenManager-фейк: выданные токены валидны, остальные нет.
type StaticTokens struct {
	mu    sync.Mutex
	valid map[string]domain.TokenClaims
}

func NewStaticTokens() *StaticTokens {
	return &StaticTokens{valid: make(map[string]domain.TokenClaims)}
}

func (s *StaticTokens) Issue(_ context.Context, userID domain.UserID, email string) (domain.Token, domain.TokenClaims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	claims := domain.TokenClaims{JTI: uuid.NewString(), UserID: userID, Email: email}
	tok := "tok-" + claims.JTI
	s.valid[tok] = claims
	return tok, claims, nil
}

func (s *StaticTokens) Parse(_ context.Context, raw domain.Token) (domain.TokenClaims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	claims, ok := s.valid[string(raw)]
	if !ok {
		return domain.TokenClaims{}, errors.New("unknown token")
	}
	return claims, nil
}
