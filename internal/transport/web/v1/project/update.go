package project

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/vaibhavipujari/myportfolio/internal/domain"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/logx"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/mw"
	v1 "github.com/vaibhavipujari/myportfolio/internal/transport/web/v1"
)

// Update godoc
// @Summary     Update project fields
// @Description Неглубокий merge патча поверх существующей записи; id неизменяем.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "project id"
// @Param       request body domain.Project true "partial project"
// @Success     200 {object} mutateResponse
// @Failure     400 {object} map[string]string
// @Failure     401 {object} map[string]string
// @Failure     404 {object} map[string]string
// @Failure     500 {object} map[string]string
// @Router      /api/projects/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "project.update"
	reqID := mw.RequestIDFromCtx(r.Context())

	if _, ok := domain.UserFromCtx(r.Context()); !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		v1.WriteError(w, r, http.StatusBadRequest, "invalid project id")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		logx.Error(h.Log, reqID, op, "read body failed", err)
		v1.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	list, err := h.load(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "load failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	idx := indexByID(list, id)
	if idx == -1 {
		v1.WriteError(w, r, http.StatusNotFound, "project not found")
		return
	}

	// merge патча: unmarshal поверх копии существующей записи — присланные
	// поля перекрывают старые, отсутствующие остаются как были
	merged := list[idx]
	if err := json.Unmarshal(body, &merged); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	merged.ID = id
	list[idx] = merged

	if err := h.save(r.Context(), list); err != nil {
		logx.Error(h.Log, reqID, op, "save failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "project_id", id)
	v1.WriteJSON(w, r, http.StatusOK, mutateResponse{Success: true, Project: merged})
}
