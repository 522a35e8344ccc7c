package resume

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhavipujari/myportfolio/internal/domain"
	"github.com/vaibhavipujari/myportfolio/internal/testutil"
)

func newHandler(store *testutil.MemStore, blob *testutil.MemBlob) *Handler {
	return &Handler{
		Log:     log.New(io.Discard, "", 0),
		Store:   store,
		Storage: blob,
		Now:     func() time.Time { return time.UnixMilli(1700000000000) },
	}
}

func asAdmin(r *http.Request) *http.Request {
	return r.WithContext(domain.WithUser(r.Context(), domain.User{Email: "admin@example.com"}))
}

func multipartPDF(t *testing.T, field string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, "resume.pdf")
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestGetURLBeforeUpload(t *testing.T) {
	h := newHandler(testutil.NewMemStore(), testutil.NewMemBlob())

	rec := httptest.NewRecorder()
	h.GetURL(rec, httptest.NewRequest(http.MethodGet, "/api/resume", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no resume found")
}

func TestUploadThenGetURL(t *testing.T) {
	store := testutil.NewMemStore()
	blob := testutil.NewMemBlob()
	h := newHandler(store, blob)

	pdf := []byte("%PDF-1.4 test")
	body, contentType := multipartPDF(t, "file", pdf)
	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/resume/upload", body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success  bool   `json:"success"`
		FileName string `json:"fileName"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "resume-1700000000000.pdf", resp.FileName)

	// blob записан до сдвига указателя
	assert.Equal(t, pdf, blob.Objects[resp.FileName])
	require.NotNil(t, store.Raw(domain.KeyResume))

	rec = httptest.NewRecorder()
	h.GetURL(rec, httptest.NewRequest(http.MethodGet, "/api/resume", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var urlResp struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &urlResp))
	assert.NotEmpty(t, urlResp.URL)
	assert.Contains(t, urlResp.URL, resp.FileName)
}

func TestUploadReplacesPointer(t *testing.T) {
	store := testutil.NewMemStore()
	blob := testutil.NewMemBlob()
	h := newHandler(store, blob)

	upload := func(ts int64, content string) string {
		h.Now = func() time.Time { return time.UnixMilli(ts) }
		body, contentType := multipartPDF(t, "file", []byte(content))
		req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/resume/upload", body))
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.Upload(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			FileName string `json:"fileName"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp.FileName
	}

	first := upload(1000, "v1")
	second := upload(2000, "v2")
	require.NotEqual(t, first, second)

	// указатель смотрит на новый blob; старый blob осознанно не удаляется
	var pointer string
	require.NoError(t, json.Unmarshal(store.Raw(domain.KeyResume), &pointer))
	assert.Equal(t, second, pointer)
	assert.Contains(t, blob.Objects, first)
	assert.Contains(t, blob.Objects, second)
}

func TestUploadWithoutFile(t *testing.T) {
	h := newHandler(testutil.NewMemStore(), testutil.NewMemBlob())

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("other", "x"))
	require.NoError(t, w.Close())

	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/resume/upload", &buf))
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no file provided")
}

func TestUploadWithoutIdentity(t *testing.T) {
	store := testutil.NewMemStore()
	h := newHandler(store, testutil.NewMemBlob())

	body, contentType := multipartPDF(t, "file", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, store.Raw(domain.KeyResume))
}

func TestUploadStorageFailureKeepsPointer(t *testing.T) {
	store := testutil.NewMemStore()
	blob := testutil.NewMemBlob()
	blob.FailPut = true
	h := newHandler(store, blob)

	body, contentType := multipartPDF(t, "file", []byte("x"))
	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/resume/upload", body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, store.Raw(domain.KeyResume), "pointer must not advance past a failed put")
}
