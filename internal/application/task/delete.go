package task

import (
	"context"

	"github.com/varis/taskboard/internal/domain"
)

// Delete removes a task. Owner only; admins cannot delete. Existence is
// checked before ownership so a bogus id is reported as not-found rather
// than forbidden.
func (s *Service) Delete(ctx context.Context, actor domain.User, id string) error {
	if err := domain.RejectAdminMutation(actor, "delete"); err != nil {
		return err
	}

	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.CanDeleteTask(actor, t); err != nil {
		return err
	}

	return s.tasks.Delete(ctx, id)
}
