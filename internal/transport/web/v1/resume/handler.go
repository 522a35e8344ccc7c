package resume

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/vaibhavipujari/myportfolio/internal/domain"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/logx"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/mw"
	v1 "github.com/vaibhavipujari/myportfolio/internal/transport/web/v1"
)

// Подписанная ссылка живёт час; сервер её не кеширует.
const signedURLTTL = time.Hour

type Handler struct {
	Log     *log.Logger
	Store   domain.ContentStore
	Storage domain.BlobStorage

	// подменяется в тестах
	Now func() time.Time
}

type uploadResponse struct {
	Success  bool   `json:"success"`
	FileName string `json:"fileName"`
}

type urlResponse struct {
	URL string `json:"url"`
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Upload godoc
// @Summary     Upload resume PDF
// @Description Пишет blob под новым timestamp-именем, затем двигает указатель.
// @Description Старый blob не удаляется — осознанное накопление на таком масштабе.
// @Tags        resume
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file true "PDF file"
// @Success     200 {object} uploadResponse
// @Failure     400 {object} map[string]string
// @Failure     401 {object} map[string]string
// @Failure     500 {object} map[string]string
// @Router      /api/resume/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	const op = "resume.upload"
	reqID := mw.RequestIDFromCtx(r.Context())

	if _, ok := domain.UserFromCtx(r.Context()); !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	if err := r.ParseMultipartForm(16 << 20); err != nil {
		logx.Error(h.Log, reqID, op, "parse form failed", err)
		v1.WriteError(w, r, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, hdr, err := r.FormFile("file")
	if err != nil {
		logx.Error(h.Log, reqID, op, "form file missing", err)
		v1.WriteError(w, r, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	contentType := hdr.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}

	fileName := fmt.Sprintf("resume-%d.pdf", h.now().UnixMilli())

	// порядок важен: сперва blob, потом указатель — висячих ссылок не бывает
	if err := h.Storage.Put(r.Context(), file, fileName, contentType, hdr.Size); err != nil {
		logx.Error(h.Log, reqID, op, "storage put failed", err)
		v1.WriteError(w, r, http.StatusInternalServerError, "failed to upload resume")
		return
	}

	b, _ := json.Marshal(fileName)
	if err := h.Store.Set(r.Context(), domain.KeyResume, b); err != nil {
		logx.Error(h.Log, reqID, op, "pointer set failed", err)
		v1.WriteError(w, r, http.StatusInternalServerError, "failed to upload resume")
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "file", fileName)
	v1.WriteJSON(w, r, http.StatusOK, uploadResponse{Success: true, FileName: fileName})
}

// GetURL godoc
// @Summary     Get signed resume URL
// @Description Публичное чтение. До первой загрузки — 404, чтобы фронт показал приглашение загрузить.
// @Tags        resume
// @Produce     json
// @Success     200 {object} urlResponse
// @Failure     404 {object} map[string]string
// @Failure     500 {object} map[string]string
// @Router      /api/resume [get]
func (h *Handler) GetURL(w http.ResponseWriter, r *http.Request) {
	const op = "resume.url"
	reqID := mw.RequestIDFromCtx(r.Context())

	b, err := h.Store.Get(r.Context(), domain.KeyResume)
	if err != nil {
		logx.Error(h.Log, reqID, op, "store get failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}
	if b == nil {
		v1.WriteError(w, r, http.StatusNotFound, "no resume found")
		return
	}

	var fileName string
	if err := json.Unmarshal(b, &fileName); err != nil {
		logx.Error(h.Log, reqID, op, "stored pointer corrupt", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	url, err := h.Storage.SignedURL(r.Context(), fileName, signedURLTTL)
	if err != nil {
		logx.Error(h.Log, reqID, op, "presign failed", err, "file", fileName)
		v1.WriteError(w, r, http.StatusInternalServerError, "failed to get resume url")
		return
	}

	v1.WriteJSON(w, r, http.StatusOK, urlResponse{URL: url})
}
