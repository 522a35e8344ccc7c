package web

import (
	"log"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/vaibhavipujari/myportfolio/internal/docs"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/mw"
	authv1 "github.com/vaibhavipujari/myportfolio/internal/transport/web/v1/auth"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/v1/health"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/v1/profile"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/v1/project"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/v1/resume"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/v1/skill"
)

type handlers struct {
	signup  *authv1.HandlerSignup
	login   *authv1.HandlerLogin
	profile *profile.Handler
	project *project.Handler
	skill   *skill.Handler
	resume  *resume.Handler
	health  *health.Handler
}

func newRouter(h handlers, authDeps mw.AuthDeps, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /api/healthz", h.health.Liveness)
	mux.HandleFunc("GET /api/readyz", h.health.Readiness)

	// identity provider
	mux.HandleFunc("POST /api/auth/signup", h.signup.Signup)
	mux.HandleFunc("POST /api/auth/login", h.login.Login)

	// чтение публично, мутации — только с Bearer
	guard := func(hf http.HandlerFunc) http.Handler {
		return mw.RequireAuth(authDeps, hf)
	}

	mux.HandleFunc("GET /api/profile", h.profile.Get)
	mux.Handle("PUT /api/profile", guard(h.profile.Update))

	mux.HandleFunc("GET /api/projects", h.project.List)
	mux.Handle("POST /api/projects", guard(h.project.Create))
	mux.Handle("PUT /api/projects/{id}", guard(h.project.Update))
	mux.Handle("DELETE /api/projects/{id}", guard(h.project.Delete))

	mux.HandleFunc("GET /api/skills", h.skill.List)
	mux.Handle("PUT /api/skills", guard(h.skill.Replace))

	mux.HandleFunc("GET /api/resume", h.resume.GetURL)
	mux.Handle("POST /api/resume/upload", guard(limitBody(16<<20, h.resume.Upload))) // 16MB лимит

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// 🔗 middleware
	return mw.WithRequestID(mw.Logging(logger)(mux))
}

func limitBody(n int64, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h(w, r)
	}
}
