package task

import (
	"context"

	"github.com/varis/taskboard/internal/domain"
)

/*
TaskRepo
--------
Persistence port for tasks. Listings are ordered newest-first.
*/
type TaskRepo interface {
	Create(ctx context.Context, t domain.Task) (domain.Task, error)
	GetByID(ctx context.Context, id string) (domain.Task, error)
	ListByOwner(ctx context.Context, userID string) ([]domain.Task, error)
	ListAllWithOwners(ctx context.Context) ([]domain.TaskWithOwner, error)
	Update(ctx context.Context, t domain.Task) (domain.Task, error)
	Delete(ctx context.Context, id string) error
}
