package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/varis/taskboard/internal/transport/http/middleware"
)

type HealthHandler interface {
	Liveness(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	UpdatePassword(w http.ResponseWriter, r *http.Request)
}

type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health HealthHandler
	Auth   AuthHandler
	Task   TaskHandler

	AuthMW func(http.Handler) http.Handler

	Log            zerolog.Logger
	AllowedOrigins []string
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Task == nil {
		return nil, fmt.Errorf("nil Task handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.HTTPLogger(deps.Log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(deps.AllowedOrigins))

	r.Get("/health", deps.Health.Liveness)
	r.Get("/readyz", deps.Health.Readyz)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", deps.Auth.Register)
		r.Post("/login", deps.Auth.Login)
		r.With(deps.AuthMW).Get("/user", deps.Auth.Profile)
		r.With(deps.AuthMW).Put("/update-password", deps.Auth.UpdatePassword)
	})

	r.Route("/api/task", func(r chi.Router) {
		r.Use(deps.AuthMW)

		r.Post("/", deps.Task.Create)
		r.Get("/", deps.Task.List)
		r.Get("/{id}", deps.Task.Get)
		r.Put("/{id}", deps.Task.Update)
		r.Delete("/{id}", deps.Task.Delete)
	})

	return r, nil
}
