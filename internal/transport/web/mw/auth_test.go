package mw

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhavipujari/myportfolio/internal/domain"
	"github.com/vaibhavipujari/myportfolio/internal/testutil"
)

func authSetup(t *testing.T) (AuthDeps, *testutil.MemUsers, string, domain.User) {
	t.Helper()
	users := testutil.NewMemUsers()
	tokens := testutil.NewStaticTokens()

	u, err := users.CreateUser(context.Background(), "admin@example.com", "Admin", []byte("x"))
	require.NoError(t, err)
	tok, _, err := tokens.Issue(context.Background(), u.ID, u.Email)
	require.NoError(t, err)

	return AuthDeps{Tokens: tokens, Users: users}, users, tok, u
}

func TestRequireAuthNoToken(t *testing.T) {
	deps, _, _, _ := authSetup(t)

	called := false
	h := RequireAuth(deps, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "no token provided")
	assert.False(t, called)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	deps, _, _, _ := authSetup(t)

	h := RequireAuth(deps, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodPut, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestRequireAuthValidToken(t *testing.T) {
	deps, _, tok, want := authSetup(t)

	var got domain.User
	var ok bool
	h := RequireAuth(deps, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = domain.UserFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPut, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, want.ID, got.ID)
}

func TestRequireAuthDeletedUser(t *testing.T) {
	deps, users, tok, u := authSetup(t)
	users.Delete(u.ID)

	h := RequireAuth(deps, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodPut, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractBearer(t *testing.T) {
	assert.Equal(t, "abc", extractBearer("Bearer abc"))
	assert.Equal(t, "abc", extractBearer("bearer abc"))
	assert.Equal(t, "", extractBearer("Basic abc"))
	assert.Equal(t, "", extractBearer(""))
}
