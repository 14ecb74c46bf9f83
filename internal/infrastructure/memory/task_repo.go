package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/varis/taskboard/internal/domain"
)

// TaskRepo mirrors the postgres task store for dev and tests.
// Listings come back newest-first, matching the SQL ORDER BY.
type TaskRepo struct {
	mu    sync.RWMutex
	byID  map[string]domain.Task
	users *UserRepo // owner lookups for the admin listing
}

func NewTaskRepo(users *UserRepo) *TaskRepo {
	return &TaskRepo{
		byID:  make(map[string]domain.Task),
		users: users,
	}
}

func (r *TaskRepo) Create(ctx context.Context, t domain.Task) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.ID == "" || t.UserID == "" {
		return domain.Task{}, domain.ErrInternal(nil)
	}

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	r.byID[t.ID] = t
	return t, nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id string) (domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound()
	}
	return t, nil
}

func (r *TaskRepo) ListByOwner(ctx context.Context, userID string) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Task, 0)
	for _, t := range r.byID {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *TaskRepo) ListAllWithOwners(ctx context.Context) ([]domain.TaskWithOwner, error) {
	r.mu.RLock()
	tasks := make([]domain.Task, 0, len(r.byID))
	for _, t := range r.byID {
		tasks = append(tasks, t)
	}
	r.mu.RUnlock()

	sortNewestFirst(tasks)

	out := make([]domain.TaskWithOwner, 0, len(tasks))
	for _, t := range tasks {
		owner := domain.TaskOwner{ID: t.UserID}
		if r.users != nil {
			if u, err := r.users.GetByID(ctx, t.UserID); err == nil {
				owner = domain.TaskOwner{ID: u.ID, Name: u.Name, Email: u.Email}
			}
		}
		out = append(out, domain.TaskWithOwner{Task: t, Owner: owner})
	}
	return out, nil
}

func (r *TaskRepo) Update(ctx context.Context, t domain.Task) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[t.ID]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound()
	}

	t.UserID = cur.UserID
	t.CreatedAt = cur.CreatedAt
	t.UpdatedAt = time.Now()
	r.byID[t.ID] = t
	return t, nil
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.ErrTaskNotFound()
	}
	delete(r.byID, id)
	return nil
}

func sortNewestFirst(ts []domain.Task) {
	sort.SliceStable(ts, func(i, j int) bool {
		if ts[i].CreatedAt.Equal(ts[j].CreatedAt) {
			return ts[i].ID > ts[j].ID
		}
		return ts[i].CreatedAt.After(ts[j].CreatedAt)
	})
}
