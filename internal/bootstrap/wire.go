package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/varis/taskboard/internal/application/auth"
	"github.com/varis/taskboard/internal/application/task"
	"github.com/varis/taskboard/internal/audit"
	"github.com/varis/taskboard/internal/config"
	"github.com/varis/taskboard/internal/infrastructure/db/postgres"
	"github.com/varis/taskboard/internal/infrastructure/memory"
	"github.com/varis/taskboard/internal/infrastructure/redis"
	"github.com/varis/taskboard/internal/infrastructure/security"
	"github.com/varis/taskboard/internal/logger"
	http_handlers "github.com/varis/taskboard/internal/transport/http/handlers"
	"github.com/varis/taskboard/internal/transport/http/middleware"
	"github.com/varis/taskboard/internal/transport/http/response"
	"github.com/varis/taskboard/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(addr string) (DBCloser, error)

	NewRedis func(addr, password string, db int) RedisClient

	NewRouter func(router.Deps) (http.Handler, error)
}

type DBCloser interface {
	Close() error
}

type RedisClient interface {
	Ping(ctx context.Context) error
	Close() error
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	var cleanupFns []func()

	// 1) stores. No DB_ADDR in dev selects the in-memory fallback.
	var (
		userRepo auth.UserRepo
		taskRepo task.TaskRepo
		sqlDB    *sql.DB
	)

	if cfg.DBAddr == "" {
		logger.Logger.Warn().Msg("DB_ADDR empty; using in-memory stores")
		memUsers := memory.NewUserRepo()
		userRepo = memUsers
		taskRepo = memory.NewTaskRepo(memUsers)
	} else {
		db, err := deps.NewDB(cfg.DBAddr)
		if err != nil {
			return nil, nil, err
		}
		cleanupFns = append(cleanupFns, func() { _ = db.Close() })

		var ok bool
		sqlDB, ok = db.(*sql.DB)
		if !ok {
			runCleanup(cleanupFns)
			return nil, nil, errors.New("bootstrap: NewDB did not return *sql.DB")
		}

		if err := postgres.EnsureSchema(context.Background(), sqlDB); err != nil {
			runCleanup(cleanupFns)
			return nil, nil, err
		}

		userRepo = postgres.NewUserRepo(sqlDB)
		taskRepo = postgres.NewTaskRepo(sqlDB)
	}

	// 2) redis (best-effort)
	var redisCli RedisClient
	if deps.NewRedis != nil && cfg.RedisAddr != "" {
		c := deps.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := c.Ping(ctx); err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; cache disabled")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			redisCli = c
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
	}

	if redisCli != nil {
		if rc, ok := redisCli.(*redis.Client); ok {
			taskRepo = redis.NewCachedTaskRepo(taskRepo, rc, cfg.TaskCacheTTL)
		}
	}

	// 3) security
	logger.Logger.Info().Str("issuer", cfg.JWTIssuer).Msg("initializing jwt signer")
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL)

	// 4) services
	authSvc := auth.NewService(userRepo, hasher, signer)
	taskSvc := task.NewService(taskRepo)
	auditLog := audit.New(logger.Logger)

	// 5) handlers + middleware
	authH := http_handlers.NewAuthHandler(authSvc, taskSvc, auditLog)
	taskH := http_handlers.NewTaskHandler(taskSvc, auditLog)
	healthH := http_handlers.NewHealthHandler(sqlDB)

	authMW := middleware.Auth(signer, userRepo, response.WriteError)

	// 6) router
	mux, err := deps.NewRouter(router.Deps{
		Health:         healthH,
		Auth:           authH,
		Task:           taskH,
		AuthMW:         authMW,
		Log:            logger.Logger,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 7) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB: func(addr string) (DBCloser, error) {
			return config.NewDB(addr)
		},
		NewRedis: func(addr, password string, db int) RedisClient {
			return redis.New(addr, password, db)
		},
		NewRouter: func(d router.Deps) (http.Handler, error) {
			return router.New(d)
		},
	}
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
