package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/vaibhavipujari/myportfolio/internal/config"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/mw"
	authv1 "github.com/vaibhavipujari/myportfolio/internal/transport/web/v1/auth"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/v1/health"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/v1/profile"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/v1/project"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/v1/resume"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web/v1/skill"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

func New(logger *log.Logger, cfg *config.Config, d Deps) *Server {
	sub := func(name string) *log.Logger {
		return log.New(logger.Writer(), logger.Prefix()+"["+name+"] ", logger.Flags())
	}

	h := handlers{
		signup:  &authv1.HandlerSignup{Log: sub("auth"), Users: d.Users, Hasher: d.Hasher},
		login:   &authv1.HandlerLogin{Log: sub("auth"), Users: d.Users, Hasher: d.Hasher, Tokens: d.Tokens},
		profile: &profile.Handler{Log: sub("profile"), Store: d.Store},
		project: &project.Handler{Log: sub("project"), Store: d.Store},
		skill:   &skill.Handler{Log: sub("skill"), Store: d.Store},
		resume:  &resume.Handler{Log: sub("resume"), Store: d.Store, Storage: d.Storage},
		health:  &health.Handler{Log: sub("health"), DB: d.Users, Store: d.Store, Storage: d.Storage},
	}
	authDeps := mw.AuthDeps{Tokens: d.Tokens, Users: d.Users}

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           newRouter(h, authDeps, logger),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
