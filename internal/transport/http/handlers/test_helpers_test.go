package http_handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/varis/taskboard/internal/application/auth"
	"github.com/varis/taskboard/internal/application/task"
	"github.com/varis/taskboard/internal/audit"
	"github.com/varis/taskboard/internal/infrastructure/memory"
	"github.com/varis/taskboard/internal/infrastructure/security"
	"github.com/varis/taskboard/internal/transport/http/middleware"
	"github.com/varis/taskboard/internal/transport/http/response"
	"github.com/varis/taskboard/internal/transport/http/router"
)

// testApp wires the full stack against in-memory stores so the tests
// exercise routing, middleware, handlers and services together.
type testApp struct {
	handler http.Handler
	taskSvc *task.Service
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	users := memory.NewUserRepo()
	tasks := memory.NewTaskRepo(users)

	hasher := security.NewBcryptHasher(4)
	signer := security.NewJWTSigner("test-secret", "taskboard-test", time.Hour)

	authSvc := auth.NewService(users, hasher, signer)
	taskSvc := task.NewService(tasks)
	auditLog := audit.New(zerolog.Nop())

	authH := NewAuthHandler(authSvc, taskSvc, auditLog)
	taskH := NewTaskHandler(taskSvc, auditLog)
	healthH := NewHealthHandler(nil)

	mux, err := router.New(router.Deps{
		Health: healthH,
		Auth:   authH,
		Task:   taskH,
		AuthMW: middleware.Auth(signer, users, response.WriteError),
		Log:    zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("router: %v", err)
	}

	return &testApp{handler: mux, taskSvc: taskSvc}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

// apiBody is a superset of every response shape the API produces.
type apiBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	Count   int    `json:"count"`
	User    struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
	Task  taskBody   `json:"task"`
	Tasks []taskBody `json:"tasks"`
}

type taskBody struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedBy   *struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"createdBy"`
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) apiBody {
	t.Helper()
	var b apiBody
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return b
}

// register creates a user over HTTP and fails the test on any error.
func (a *testApp) register(t *testing.T, name, email, password, role string) apiBody {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/user/register", "", map[string]string{
		"name": name, "email": email, "password": password, "role": role,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", email, rec.Code, rec.Body.String())
	}
	return decodeBody(t, rec)
}

// login returns the bearer token for existing credentials.
func (a *testApp) login(t *testing.T, email, password string) string {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/user/login", "", map[string]string{
		"key": email, "password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", email, rec.Code, rec.Body.String())
	}
	b := decodeBody(t, rec)
	if b.Token == "" {
		t.Fatalf("login %s: empty token", email)
	}
	return b.Token
}

// signup registers and logs in, returning the token.
func (a *testApp) signup(t *testing.T, name, email, password, role string) string {
	t.Helper()
	a.register(t, name, email, password, role)
	return a.login(t, email, password)
}

// createTask creates a task over HTTP and returns its payload.
func (a *testApp) createTask(t *testing.T, token, title, description, priority string) taskBody {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/task/", token, map[string]string{
		"title": title, "description": description, "priority": priority,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create task: status %d body %s", rec.Code, rec.Body.String())
	}
	return decodeBody(t, rec).Task
}
