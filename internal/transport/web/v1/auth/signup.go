package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/vaibhavipujari/myportfolio/internal/domain"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/logx"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/mw"
	v1 "github.com/vaibhavipujari/myportfolio/internal/transport/web/v1"
)

// HandlerSignup обрабатывает POST /api/auth/signup
type HandlerSignup struct {
	Log    *log.Logger
	Users  domain.UsersRepo
	Hasher domain.PasswordHasher
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type signupResponse struct {
	User domain.User `json:"user"`
}

// Signup godoc
// @Summary     Register new user
// @Description Создаёт учётку у identity-провайдера. Учётка сразу подтверждена (почтовый сервер не настроен).
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body signupRequest true "email, password, name"
// @Success     200 {object} signupResponse
// @Failure     400 {object} map[string]string
// @Failure     500 {object} map[string]string
// @Router      /api/auth/signup [post]
func (h *HandlerSignup) Signup(w http.ResponseWriter, r *http.Request) {
	const op = "auth.signup"
	reqID := mw.RequestIDFromCtx(r.Context())

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		logx.Error(h.Log, reqID, op, "missing fields", domain.ErrBadParams)
		v1.WriteError(w, r, http.StatusBadRequest, "email and password are required")
		return
	}
	if !domain.ValidEmail(req.Email) {
		logx.Error(h.Log, reqID, op, "invalid email", domain.ErrBadParams, "email", req.Email)
		v1.WriteError(w, r, http.StatusBadRequest, "invalid email")
		return
	}
	if !domain.ValidPassword(req.Password) {
		logx.Error(h.Log, reqID, op, "short password", domain.ErrBadParams)
		v1.WriteError(w, r, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	// ранняя проверка занятости email; гонку добивает уникальный индекс
	if _, err := h.Users.UserByEmail(r.Context(), req.Email); err == nil {
		logx.Error(h.Log, reqID, op, "email taken", domain.ErrBadParams, "email", req.Email)
		v1.WriteError(w, r, http.StatusBadRequest, "user with this email already exists")
		return
	} else if !errors.Is(err, domain.ErrNotFound) {
		logx.Error(h.Log, reqID, op, "lookup failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	hash, err := h.Hasher.Hash(req.Password)
	if err != nil {
		logx.Error(h.Log, reqID, op, "hash failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	u, err := h.Users.CreateUser(r.Context(), req.Email, req.Name, []byte(hash))
	if err != nil {
		if errors.Is(err, domain.ErrBadParams) {
			v1.WriteError(w, r, http.StatusBadRequest, "user with this email already exists")
			return
		}
		logx.Error(h.Log, reqID, op, "create user failed", err, "email", req.Email)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID, "email", u.Email)
	v1.WriteJSON(w, r, http.StatusOK, signupResponse{User: u})
}
