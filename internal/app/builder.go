package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/vaibhavipujari/myportfolio/internal/auth/password"
	"github.com/vaibhavipujari/myportfolio/internal/auth/token"
	"github.com/vaibhavipujari/myportfolio/internal/bootstrap"
	"github.com/vaibhavipujari/myportfolio/internal/config"
	"github.com/vaibhavipujari/myportfolio/internal/domain"
	"github.com/vaibhavipujari/myportfolio/internal/infra/database/postgres"
	redisx "github.com/vaibhavipujari/myportfolio/internal/infra/store/redis"
	s3storage "github.com/vaibhavipujari/myportfolio/internal/infra/storage/s3"
	"github.com/vaibhavipujari/myportfolio/internal/transport/web"
)

type App struct {
	config  *config.Config
	server  *web.Server
	log     *log.Logger
	storage domain.BlobStorage
	store   domain.ContentStore
	users   domain.UsersRepo
}

func Build(ctx context.Context) (*App, error) {
	base := log.New(os.Stdout, "[app] ", log.LstdFlags)

	serverLog := log.New(base.Writer(), base.Prefix()+"[server] ", base.Flags())
	pgLog := log.New(base.Writer(), base.Prefix()+"[postgres] ", base.Flags())
	s3Log := log.New(base.Writer(), base.Prefix()+"[s3] ", base.Flags())
	redisLog := log.New(base.Writer(), base.Prefix()+"[redis] ", base.Flags())
	bootLog := log.New(base.Writer(), base.Prefix()+"[bootstrap] ", base.Flags())

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}
	base.Printf("\n  configuration: %s-------------------", cfg)

	base.Println("init PostgreSQL")
	users, err := postgres.NewPGRepo(ctx, pgLog, cfg.GetDSN(), cfg.DBScheme)
	if err != nil {
		return nil, fmt.Errorf("failed init postgres: %w", err)
	}
	base.Println("PostgreSQL is initialized")

	base.Println("init S3 storage")
	s3cfg := s3storage.Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		UseSSL:    cfg.S3UseSSL,
		PathStyle: cfg.S3PathStyle,
	}
	s3, err := s3storage.New(s3cfg, s3Log)
	if err != nil {
		return nil, fmt.Errorf("failed init s3: %w", err)
	}

	base.Println("init Redis")
	store := redisx.New(redisx.Config{
		Addr:     cfg.RedisAddr,
		DB:       cfg.RedisDB,
		Password: cfg.RedisPassword,
	}, redisLog)
	if err := store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed init redis: %w", err)
	}
	base.Println("Redis is initialized")

	// Auth primitives
	hasher := password.NewDefault()
	tm := token.New(cfg.AuthJWTSecret, cfg.AuthIssuer, cfg.AuthTokenTTL)

	// Bootstrap выполняется до приёма запросов; ошибки не фатальны —
	// сервис стартует деградированным, пока провайдер не оживёт.
	bootstrap.Run(ctx, bootstrap.Deps{
		Log:     bootLog,
		Users:   users,
		Hasher:  hasher,
		Storage: s3,
		Admin: bootstrap.Admin{
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
			Name:     cfg.AdminName,
		},
	})

	base.Println("init Server")
	server := web.New(serverLog, cfg, web.Deps{
		Users:   users,
		Hasher:  hasher,
		Tokens:  tm,
		Store:   store,
		Storage: s3,
	})
	base.Println("Server is initialized")

	base.Println("build ended")
	return &App{
		config:  cfg,
		server:  server,
		log:     base,
		storage: s3,
		store:   store,
		users:   users,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Println("start application...")
	go a.server.Run()
	<-ctx.Done()
	a.log.Println("stop application...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.server.Close(stopCtx)
	a.users.Close()
	a.store.Close()

	return nil
}
