package task

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/varis/taskboard/internal/domain"
)

// Create stores a new pending task owned by the actor. The role check runs
// before any payload validation: an admin is rejected regardless of input.
func (s *Service) Create(ctx context.Context, actor domain.User, title, description, priority string) (domain.Task, error) {
	if err := domain.CanCreateTask(actor); err != nil {
		return domain.Task{}, err
	}

	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return domain.Task{}, domain.ErrMissingField("title")
	}
	if description == "" {
		return domain.Task{}, domain.ErrMissingField("description")
	}
	if priority == "" {
		return domain.Task{}, domain.ErrMissingField("priority")
	}
	if len(title) < MinTitleLen {
		return domain.Task{}, domain.ErrInvalidField("title", "minimum length 3")
	}
	if len(description) < MinDescriptionLen {
		return domain.Task{}, domain.ErrInvalidField("description", "minimum length 6")
	}

	p := domain.Priority(priority)
	if !p.Valid() {
		return domain.Task{}, domain.ErrInvalidPriority(priority)
	}

	t := domain.Task{
		ID:          uuid.NewString(),
		UserID:      actor.ID,
		Title:       title,
		Description: description,
		Priority:    p,
		Status:      domain.StatusPending,
	}

	return s.tasks.Create(ctx, t)
}
