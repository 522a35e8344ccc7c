package profile

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/vaibhavipujari/myportfolio/internal/domain"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/logx"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/mw"
	v1 "github.com/vaibhavipujari/myportfolio/internal/transport/web/v1"
)

type Handler struct {
	Log   *log.Logger
	Store domain.ContentStore
}

type updateResponse struct {
	Success bool           `json:"success"`
	Profile domain.Profile `json:"profile"`
}

// Get godoc
// @Summary     Get owner profile
// @Description Публичное чтение. Пустой стор -> полностью заполненный дефолт, никогда не null.
// @Tags        profile
// @Produce     json
// @Success     200 {object} domain.Profile
// @Failure     500 {object} map[string]string
// @Router      /api/profile [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "profile.get"
	reqID := mw.RequestIDFromCtx(r.Context())

	b, err := h.Store.Get(r.Context(), domain.KeyProfile)
	if err != nil {
		logx.Error(h.Log, reqID, op, "store get failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}
	if b == nil {
		v1.WriteJSON(w, r, http.StatusOK, domain.DefaultProfile())
		return
	}

	var p domain.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		logx.Error(h.Log, reqID, op, "stored profile corrupt", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}
	v1.WriteJSON(w, r, http.StatusOK, p)
}

// Update godoc
// @Summary     Replace owner profile
// @Description Перезаписывает синглтон целиком, без серверной нормализации — форму определяет владелец.
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body domain.Profile true "profile"
// @Success     200 {object} updateResponse
// @Failure     400 {object} map[string]string
// @Failure     401 {object} map[string]string
// @Failure     500 {object} map[string]string
// @Router      /api/profile [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "profile.update"
	reqID := mw.RequestIDFromCtx(r.Context())

	if _, ok := domain.UserFromCtx(r.Context()); !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	var p domain.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := json.Marshal(p)
	if err != nil {
		logx.Error(h.Log, reqID, op, "marshal failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}
	if err := h.Store.Set(r.Context(), domain.KeyProfile, b); err != nil {
		logx.Error(h.Log, reqID, op, "store set failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok")
	v1.WriteJSON(w, r, http.StatusOK, updateResponse{Success: true, Profile: p})
}
