package task

import (
	"context"

	"github.com/varis/taskboard/internal/domain"
)

// List returns the tasks visible to the actor, newest first. Admins see
// every user's tasks with the owner identity attached; members see their
// own tasks only (Owner left zero).
func (s *Service) List(ctx context.Context, actor domain.User) ([]domain.TaskWithOwner, error) {
	if actor.Role.IsAdmin() {
		return s.tasks.ListAllWithOwners(ctx)
	}

	own, err := s.tasks.ListByOwner(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TaskWithOwner, 0, len(own))
	for _, t := range own {
		out = append(out, domain.TaskWithOwner{Task: t})
	}
	return out, nil
}

// ListOwn returns a user's tasks, newest first; used by the profile view.
// An empty list is valid, not an error.
func (s *Service) ListOwn(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.tasks.ListByOwner(ctx, userID)
}

// Get fetches a task by id; existence is checked before ownership, so a
// missing id is a 404 even for a non-owner.
func (s *Service) Get(ctx context.Context, actor domain.User, id string) (domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if err := domain.CanReadTask(actor, t); err != nil {
		return domain.Task{}, err
	}
	return t, nil
}
