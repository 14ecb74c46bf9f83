package task

import (
	"context"
	"sync"
	"testing"

	"github.com/varis/taskboard/internal/domain"
)

type fakeTaskRepo struct {
	mu sync.Mutex

	byID  map[string]domain.Task
	order []string // insertion order; listings return newest first

	owners map[string]domain.TaskOwner // userID -> owner identity

	createErr error
	getErr    error
	listErr   error
	updateErr error
	deleteErr error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{
		byID:   map[string]domain.Task{},
		owners: map[string]domain.TaskOwner{},
	}
}

func (f *fakeTaskRepo) Create(ctx context.Context, t domain.Task) (domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return domain.Task{}, f.createErr
	}
	f.byID[t.ID] = t
	f.order = append(f.order, t.ID)
	return t, nil
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, id string) (domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return domain.Task{}, f.getErr
	}
	t, ok := f.byID[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound()
	}
	return t, nil
}

func (f *fakeTaskRepo) ListByOwner(ctx context.Context, userID string) ([]domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.Task
	for i := len(f.order) - 1; i >= 0; i-- {
		if t, ok := f.byID[f.order[i]]; ok && t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) ListAllWithOwners(ctx context.Context) ([]domain.TaskWithOwner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.TaskWithOwner
	for i := len(f.order) - 1; i >= 0; i-- {
		if t, ok := f.byID[f.order[i]]; ok {
			out = append(out, domain.TaskWithOwner{Task: t, Owner: f.owners[t.UserID]})
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, t domain.Task) (domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return domain.Task{}, f.updateErr
	}
	if _, ok := f.byID[t.ID]; !ok {
		return domain.Task{}, domain.ErrTaskNotFound()
	}
	f.byID[t.ID] = t
	return t, nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrTaskNotFound()
	}
	delete(f.byID, id)
	return nil
}

func newSvcForTest(t *testing.T) (*Service, *fakeTaskRepo) {
	t.Helper()

	repo := newFakeTaskRepo()
	return NewService(repo), repo
}

func requireErrCode(t *testing.T, err error, code string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error with code %q, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected code %q, got %v", code, err)
	}
}
