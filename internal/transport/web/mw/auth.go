package mw

import (
	"net/http"
	"strings"

	"github.com/vaibhavipujari/myportfolio/internal/domain"
)

type AuthDeps struct {
	Tokens domain.TokenManager
	Users  domain.UsersRepo
}

// RequireAuth пускает дальше только с валидным Bearer-токеном,
// владелец которого всё ещё существует у identity-провайдера.
// Вешается только на мутирующие маршруты: чтение портфолио публично.
func RequireAuth(deps AuthDeps, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := extractBearer(r.Header.Get("Authorization"))
		if raw == "" {
			writeUnauthorized(w, "unauthorized: no token provided")
			return
		}
		claims, err := deps.Tokens.Parse(r.Context(), raw)
		if err != nil {
			writeUnauthorized(w, "unauthorized: invalid token")
			return
		}
		// токен удалённого пользователя недействителен
		u, err := deps.Users.UserByID(r.Context(), claims.UserID)
		if err != nil {
			writeUnauthorized(w, "unauthorized: invalid token")
			return
		}
		next.ServeHTTP(w, r.WithContext(domain.WithUser(r.Context(), u)))
	})
}

func extractBearer(h string) string {
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func writeUnauthorized(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"` + text + `"}` + "\n"))
}
