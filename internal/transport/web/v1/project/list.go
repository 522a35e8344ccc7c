package project

import (
	"net/http"

	"github.com/vaibhavipujari/myportfolio/internal/domain"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/logx"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/mw"
	v1 "github.com/vaibhavipujari/myportfolio/internal/transport/web/v1"
)

// List godoc
// @Summary     List portfolio projects
// @Description Публичное чтение; пустой стор -> пустой список, не ошибка.
// @Tags        projects
// @Produce     json
// @Success     200 {array} domain.Project
// @Failure     500 {object} map[string]string
// @Router      /api/projects [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "project.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	list, err := h.load(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "load failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}
	v1.WriteJSON(w, r, http.StatusOK, list)
}
