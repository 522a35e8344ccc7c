package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vaibhavipujari/myportfolio/internal/domain"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/mw"
)

// Ошибки уходят наружу телом {"error": "<text>"} с соответствующим статусом.
type errorBody struct {
	Error string `json:"error"`
}

// MapDomainError решает HTTP-статус и текст по доменной ошибке
func MapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrBadParams):
		return http.StatusBadRequest, "bad params"
	case errors.Is(err, domain.ErrUnauth):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, "method not allowed"
	default:
		// таймауты/отмены/провайдерские сбои — как 500
		return http.StatusInternalServerError, "unexpected error"
	}
}

func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-ID", mw.RequestIDFromCtx(r.Context()))
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, text string) {
	WriteJSON(w, r, status, errorBody{Error: text})
}

func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, text := MapDomainError(err)
	WriteError(w, r, status, text)
}
