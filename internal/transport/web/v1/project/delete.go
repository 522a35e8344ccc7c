package project

import (
	"net/http"
	"strconv"

	"github.com/vaibhavipujari/myportfolio/internal/domain"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/logx"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/mw"
	v1 "github.com/vaibhavipujari/myportfolio/internal/transport/web/v1"
)

// Delete godoc
// @Summary     Delete project
// @Description Удаление без soft-delete. Неизвестный id — no-op, не ошибка.
// @Tags        projects
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "project id"
// @Success     200 {object} map[string]bool
// @Failure     400 {object} map[string]string
// @Failure     401 {object} map[string]string
// @Failure     500 {object} map[string]string
// @Router      /api/projects/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "project.delete"
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

	list, err := h.load(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "load failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	filtered := list[:0:0]
	for _, p := range list {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if filtered == nil {
		filtered = []domain.Project{}
	}

	if err := h.save(r.Context(), filtered); err != nil {
		logx.Error(h.Log, reqID, op, "save failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "project_id", id)
	v1.WriteJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}
