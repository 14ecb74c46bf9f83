package dto

import (
	"time"

	"github.com/varis/taskboard/internal/domain"
	"github.com/varis/taskboard/internal/transport/http/response"
)

// UserView is the standard user payload. The password hash never appears;
// callers must pass a sanitized user.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type RegisterResponse struct {
	response.Meta
	User UserView `json:"user"`
}

type LoginResponse struct {
	response.Meta
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

type PasswordChangeResponse struct {
	response.Meta
}

// ProfileResponse is the authenticated user's identity plus their tasks,
// newest first.
type ProfileResponse struct {
	response.Meta
	User  UserView   `json:"user"`
	Tasks []TaskView `json:"tasks"`
}
