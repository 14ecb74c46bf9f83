package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/varis/taskboard/internal/config"
	"github.com/varis/taskboard/internal/transport/http/router"
)

func devConfig() *config.Config {
	return &config.Config{
		Env:              "dev",
		HTTPAddr:         ":0",
		JWTSecret:        "test-secret",
		JWTIssuer:        "taskboard-test",
		AccessTokenTTL:   time.Hour,
		TaskCacheTTL:     time.Minute,
		HTTPReadTimeout:  time.Second,
		HTTPWriteTimeout: time.Second,
		HTTPIdleTimeout:  time.Second,
	}
}

func testDeps(cfg *config.Config) Deps {
	return Deps{
		LoadConfig: func() (*config.Config, error) { return cfg, nil },
		NewRouter: func(d router.Deps) (http.Handler, error) {
			return router.New(d)
		},
	}
}

func TestNewServer_InMemoryFallback(t *testing.T) {
	srv, cleanup, err := NewServerWithDeps(testDeps(devConfig()))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer cleanup()

	if srv.Addr != ":0" {
		t.Fatalf("unexpected addr %q", srv.Addr)
	}
	if srv.Handler == nil {
		t.Fatalf("expected wired handler")
	}
	if srv.ReadTimeout != time.Second {
		t.Fatalf("timeouts not applied")
	}
}

func TestNewServer_ConfigError(t *testing.T) {
	deps := testDeps(nil)
	deps.LoadConfig = func() (*config.Config, error) { return nil, errors.New("bad env") }

	if _, _, err := NewServerWithDeps(deps); err == nil {
		t.Fatalf("expected config error to propagate")
	}
}

func TestNewServer_DBError(t *testing.T) {
	cfg := devConfig()
	cfg.DBAddr = "postgres://unreachable/db"

	deps := testDeps(cfg)
	deps.NewDB = func(addr string) (DBCloser, error) {
		return nil, errors.New("connection refused")
	}

	if _, _, err := NewServerWithDeps(deps); err == nil {
		t.Fatalf("expected db error to propagate")
	}
}

type deadRedis struct{ closed bool }

func (d *deadRedis) Ping(ctx context.Context) error { return errors.New("no redis here") }
func (d *deadRedis) Close() error                   { d.closed = true; return nil }

func TestNewServer_RedisDown_CacheDisabled(t *testing.T) {
	cfg := devConfig()
	cfg.RedisAddr = "127.0.0.1:1"

	red := &deadRedis{}
	deps := testDeps(cfg)
	deps.NewRedis = func(addr, password string, db int) RedisClient { return red }

	srv, cleanup, err := NewServerWithDeps(deps)
	if err != nil {
		t.Fatalf("redis being down must not block startup: %v", err)
	}
	defer cleanup()

	if srv == nil {
		t.Fatalf("expected server")
	}
	if !red.closed {
		t.Fatalf("unreachable redis client should be closed")
	}
}

func TestNewServer_RouterError_RunsCleanup(t *testing.T) {
	deps := testDeps(devConfig())
	deps.NewRouter = func(d router.Deps) (http.Handler, error) {
		return nil, errors.New("bad router deps")
	}

	if _, _, err := NewServerWithDeps(deps); err == nil {
		t.Fatalf("expected router error to propagate")
	}
}
