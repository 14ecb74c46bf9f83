package dto

import (
	"time"

	"github.com/varis/taskboard/internal/domain"
	"github.com/varis/taskboard/internal/transport/http/response"
)

type TaskView struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// CreatedBy is populated only on the admin listing.
	CreatedBy *OwnerView `json:"createdBy,omitempty"`
}

type OwnerView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewTaskView(t domain.Task) TaskView {
	return TaskView{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewTaskViews(ts []domain.Task) []TaskView {
	out := make([]TaskView, 0, len(ts))
	for _, t := range ts {
		out = append(out, NewTaskView(t))
	}
	return out
}

// NewTaskListView renders a visibility-scoped listing. A zero Owner means
// the caller is a member looking at their own tasks, so CreatedBy is left
// out of the payload.
func NewTaskListView(ts []domain.TaskWithOwner) []TaskView {
	out := make([]TaskView, 0, len(ts))
	for _, tw := range ts {
		v := NewTaskView(tw.Task)
		if tw.Owner.ID != "" {
			v.CreatedBy = &OwnerView{
				ID:    tw.Owner.ID,
				Name:  tw.Owner.Name,
				Email: tw.Owner.Email,
			}
		}
		out = append(out, v)
	}
	return out
}

type TaskResponse struct {
	response.Meta
	Task TaskView `json:"task"`
}

type TaskListResponse struct {
	response.Meta
	Count int        `json:"count"`
	Tasks []TaskView `json:"tasks"`
}

type TaskDeleteResponse struct {
	response.Meta
}
