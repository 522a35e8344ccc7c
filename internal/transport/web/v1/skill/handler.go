package skill

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

type replaceResponse struct {
	Success bool           `json:"success"`
	Skills  []domain.Skill `json:"skills"`
}

// List godoc
// @Summary     List skills
// @Description Публичное чтение; пустой стор -> дефолтный непустой список.
// @Tags        skills
// @Produce     json
// @Success     200 {array} domain.Skill
// @Failure     500 {object} map[string]string
// @Router      /api/skills [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "skill.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	b, err := h.Store.Get(r.Context(), domain.KeySkills)
	if err != nil {
		logx.Error(h.Log, reqID, op, "store get failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}
	if b == nil {
		v1.WriteJSON(w, r, http.StatusOK, domain.DefaultSkills())
		return
	}

	var skills []domain.Skill
	if err := json.Unmarshal(b, &skills); err != nil {
		logx.Error(h.Log, reqID, op, "stored skills corrupt", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}
	v1.WriteJSON(w, r, http.StatusOK, skills)
}

// Replace godoc
// @Summary     Replace skill list
// @Description Замена списка целиком, без merge; диапазон level не проверяется.
// @Tags        skills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body []domain.Skill true "skills"
// @Success     200 {object} replaceResponse
// @Failure     400 {object} map[string]string
// @Failure     401 {object} map[string]string
// @Failure     500 {object} map[string]string
// @Router      /api/skills [put]
func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	const op = "skill.replace"
	reqID := mw.RequestIDFromCtx(r.Context())

	if _, ok := domain.UserFromCtx(r.Context()); !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	var skills []domain.Skill
	if err := json.NewDecoder(r.Body).Decode(&skills); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if skills == nil {
		skills = []domain.Skill{}
	}

	b, err := json.Marshal(skills)
	if err != nil {
		logx.Error(h.Log, reqID, op, "marshal failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}
	if err := h.Store.Set(r.Context(), domain.KeySkills, b); err != nil {
		logx.Error(h.Log, reqID, op, "store set failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "count", len(skills))
	v1.WriteJSON(w, r, http.StatusOK, replaceResponse{Success: true, Skills: skills})
}
