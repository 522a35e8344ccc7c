package token

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueParseRoundtrip(t *testing.T) {
	m := New("test-secret", "myportfolio", time.Hour)

	userID := uuid.New()
	tok, issued, err := m.Issue(context.Background(), userID, "admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	parsed, err := m.Parse(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed.UserID)
	assert.Equal(t, "admin@example.com", parsed.Email)
	assert.Equal(t, issued.JTI, parsed.JTI)
	assert.True(t, parsed.ExpiresAt.After(time.Now()))
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := New("secret-a", "myportfolio", time.Hour)
	verifier := New("secret-b", "myportfolio", time.Hour)

	tok, _, err := issuer.Issue(context.Background(), uuid.New(), "admin@example.com")
	require.NoError(t, err)

	_, err = verifier.Parse(context.Background(), tok)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	m := New("test-secret", "myportfolio", -time.Minute)

	tok, _, err := m.Issue(context.Background(), uuid.New(), "admin@example.com")
	require.NoError(t, err)

	_, err = m.Parse(context.Background(), tok)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := New("test-secret", "myportfolio", time.Hour)

	_, err := m.Parse(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}
