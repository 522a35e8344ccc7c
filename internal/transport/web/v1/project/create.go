package project

import (
	"encoding/json"
	"net/http"

	"github.com/vaibhavipujari/myportfolio/internal/domain"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/logx"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/mw"
	v1 "github.com/vaibhavipujari/myportfolio/internal/transport/web/v1"
)

// Create godoc
// @Summary     Create project
// @Description id выдаёт сервис из счётчика стора; присланный id игнорируется.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body domain.Project true "project without id"
// @Success     200 {object} mutateResponse
// @Failure     400 {object} map[string]string
// @Failure     401 {object} map[string]string
// @Failure     500 {object} map[string]string
// @Router      /api/projects [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "project.create"
	reqID := mw.RequestIDFromCtx(r.Context())

	if _, ok := domain.UserFromCtx(r.Context()); !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	var p domain.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	list, err := h.load(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "load failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	id, err := h.nextID(r.Context(), list)
	if err != nil {
		logx.Error(h.Log, reqID, op, "id alloc failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}
	p.ID = id

	list = append(list, p)
	if err := h.save(r.Context(), list); err != nil {
		logx.Error(h.Log, reqID, op, "save failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "project_id", p.ID)
	v1.WriteJSON(w, r, http.StatusOK, mutateResponse{Success: true, Project: p})
}
