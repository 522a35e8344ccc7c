package skill

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

func TestListEmptyStoreReturnsDefaults(t *testing.T) {
	h := newHandler(testutil.NewMemStore())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/skills", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var skills []domain.Skill
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &skills))
	assert.Equal(t, domain.DefaultSkills(), skills)
}

func TestReplaceIsWholesale(t *testing.T) {
	h := newHandler(testutil.NewMemStore())

	want := []domain.Skill{{Name: "Go", Level: 70}}
	body, _ := json.Marshal(want)

	rec := httptest.NewRecorder()
	h.Replace(rec, asAdmin(httptest.NewRequest(http.MethodPut, "/api/skills", bytes.NewReader(body))))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool           `json:"success"`
		Skills  []domain.Skill `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, want, resp.Skills)

	// замена целиком: дефолты не домешиваются
	rec = httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/skills", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Skill
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestReplaceWithoutIdentity(t *testing.T) {
	store := testutil.NewMemStore()
	h := newHandler(store)

	body, _ := json.Marshal([]domain.Skill{{Name: "Go", Level: 70}})
	rec := httptest.NewRecorder()
	h.Replace(rec, httptest.NewRequest(http.MethodPut, "/api/skills", bytes.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, store.Raw(domain.KeySkills))
}

func TestReplaceBadJSON(t *testing.T) {
	h := newHandler(testutil.NewMemStore())

	rec := httptest.NewRecorder()
	h.Replace(rec, asAdmin(httptest.NewRequest(http.MethodPut, "/api/skills", bytes.NewReader([]byte("not json")))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
