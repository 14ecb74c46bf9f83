package task

import (
	"context"
	"strings"

	"github.com/varis/taskboard/internal/domain"
)

// Update mutates a task's description, priority, and status. Check order:
// role, field presence, existence, ownership, then enum membership -- the
// role check must fire before the task is even fetched, and enum validation
// only after the actor is known to own the task.
func (s *Service) Update(ctx context.Context, actor domain.User, id, description, priority, status string) (domain.Task, error) {
	if err := domain.RejectAdminMutation(actor, "update"); err != nil {
		return domain.Task{}, err
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return domain.Task{}, domain.ErrMissingField("description")
	}
	if priority == "" {
		return domain.Task{}, domain.ErrMissingField("priority")
	}
	if status == "" {
		return domain.Task{}, domain.ErrMissingField("status")
	}

	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if err := domain.CanUpdateTask(actor, t); err != nil {
		return domain.Task{}, err
	}

	p := domain.Priority(priority)
	if !p.Valid() {
		return domain.Task{}, domain.ErrInvalidPriority(priority)
	}
	st := domain.Status(status)
	if !st.Valid() {
		return domain.Task{}, domain.ErrInvalidStatus(status)
	}
	if len(description) < MinDescriptionLen {
		return domain.Task{}, domain.ErrInvalidField("description", "minimum length 6")
	}

	t.Description = description
	t.Priority = p
	t.Status = st
	if st == domain.StatusCompleted {
		now := s.now()
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}

	return s.tasks.Update(ctx, t)
}
