package profile

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhavipujari/myportfolio/internal/domain"
	"github.com/vaibhavipujari/myportfolio/internal/testutil"
)

func newHandler(store *testutil.MemStore) *Handler {
	return &Handler{Log: log.New(io.Discard, "", 0), Store: store}
}

func asAdmin(r *http.Request) *http.Request {
	return r.WithContext(domain.WithUser(r.Context(), domain.User{Email: "admin@example.com"}))
}

func TestGetEmptyStoreReturnsDefaults(t *testing.T) {
	h := newHandler(testutil.NewMemStore())

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var p domain.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, domain.DefaultProfile(), p)
}

func TestUpdateThenGetRoundtrip(t *testing.T) {
	store := testutil.NewMemStore()
	h := newHandler(store)

	want := domain.Profile{
		Name:        "Vaibhavi",
		Role:        "Developer",
		Bio:         "bio",
		Email:       "me@example.com",
		Phone:       "+1",
		Location:    "Pune",
		SocialLinks: domain.SocialLinks{GitHub: "gh", LinkedIn: "li", Twitter: "tw"},
		Stats:       domain.Stats{Experience: "3+", Projects: "10+", Clients: "5+", Awards: "1"},
	}
	body, _ := json.Marshal(want)

	rec := httptest.NewRecorder()
	h.Update(rec, asAdmin(httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewReader(body))))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool           `json:"success"`
		Profile domain.Profile `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, want, resp.Profile)

	rec = httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestUpdateWithoutIdentity(t *testing.T) {
	store := testutil.NewMemStore()
	h := newHandler(store)

	body, _ := json.Marshal(domain.Profile{Name: "x"})
	rec := httptest.NewRecorder()
	h.Update(rec, httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, store.Raw(domain.KeyProfile), "store must stay untouched")
}

func TestUpdateBadJSON(t *testing.T) {
	h := newHandler(testutil.NewMemStore())

	rec := httptest.NewRecorder()
	h.Update(rec, asAdmin(httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewReader([]byte("{")))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStoreFailure(t *testing.T) {
	store := testutil.NewMemStore()
	store.FailGet = true
	h := newHandler(store)

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
