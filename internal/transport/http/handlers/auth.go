package http_handlers

import (
	"net/http"

	"github.com/varis/taskboard/internal/application/auth"
	"github.com/varis/taskboard/internal/application/task"
	"github.com/varis/taskboard/internal/audit"
	"github.com/varis/taskboard/internal/domain"
	"github.com/varis/taskboard/internal/logger"
	"github.com/varis/taskboard/internal/transport/http/dto"
	"github.com/varis/taskboard/internal/transport/http/middleware"
	"github.com/varis/taskboard/internal/transport/http/response"
)

type AuthHandler struct {
	svc   *auth.Service
	tasks *task.Service
	audit *audit.Logger
}

func NewAuthHandler(svc *auth.Service, tasks *task.Service, auditLog *audit.Logger) *AuthHandler {
	return &AuthHandler{
		svc:   svc,
		tasks: tasks,
		audit: auditLog,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	h.audit.UserRegistered(r.Context(), res.User.ID, res.User.Email, string(res.User.Role))

	response.Created(w, dto.RegisterResponse{
		Meta: response.OKMeta("user registered successfully"),
		User: dto.NewUserView(res.User.Sanitized()),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Key, req.Password)
	if err != nil {
		if domain.Is(err, "invalid_credentials") {
			h.audit.LoginFailed(r.Context(), req.Key, "invalid_credentials")
		}
		response.WriteError(w, r, err)
		return
	}

	h.audit.LoginSuccess(r.Context(), res.User.ID, res.User.Email)

	response.OK(w, dto.LoginResponse{
		Meta:  response.OKMeta("login successful"),
		Token: res.Token,
		User:  dto.NewUserView(res.User.Sanitized()),
	})
}

// Profile returns the authenticated user plus their tasks, newest first.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenMissing())
		return
	}

	own, err := h.tasks.ListOwn(r.Context(), u.ID)
	if err != nil {
		logger.WithCtx(r.Context()).Error().Err(err).Str("user_id", u.ID).Msg("profile_tasks_failed")
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.ProfileResponse{
		Meta:  response.OKMeta("profile fetched successfully"),
		User:  dto.NewUserView(u),
		Tasks: dto.NewTaskViews(own),
	})
}

func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenMissing())
		return
	}

	var req dto.PasswordChangeRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.svc.PasswordChange(r.Context(), u.ID, req.OldPassword, req.NewPassword); err != nil {
		response.WriteError(w, r, err)
		return
	}

	h.audit.PasswordChanged(r.Context(), u.ID)

	response.OK(w, dto.PasswordChangeResponse{
		Meta: response.OKMeta("password updated successfully"),
	})
}
