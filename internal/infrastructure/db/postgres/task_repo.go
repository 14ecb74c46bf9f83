package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/varis/taskboard/internal/domain"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

const taskCols = `id, user_id, title, description, priority, status, completed_at, created_at, updated_at`

func scanTask(sc interface{ Scan(...any) error }) (taskRow, error) {
	var tr taskRow
	err := sc.Scan(
		&tr.ID,
		&tr.UserID,
		&tr.Title,
		&tr.Description,
		&tr.Priority,
		&tr.Status,
		&tr.CompletedAt,
		&tr.CreatedAt,
		&tr.UpdatedAt,
	)
	return tr, err
}

func toDomainTask(tr taskRow) domain.Task {
	return domain.Task{
		ID:          tr.ID,
		UserID:      tr.UserID,
		Title:       tr.Title,
		Description: tr.Description,
		Priority:    domain.Priority(tr.Priority),
		Status:      domain.Status(tr.Status),
		CompletedAt: tr.CompletedAt,
		CreatedAt:   tr.CreatedAt,
		UpdatedAt:   tr.UpdatedAt,
	}
}

// ---------- task.TaskRepo ----------

func (r *TaskRepo) Create(ctx context.Context, t domain.Task) (domain.Task, error) {
	if t.ID == "" {
		return domain.Task{}, domain.ErrMissingField("id")
	}
	if t.UserID == "" {
		return domain.Task{}, domain.ErrMissingField("user_id")
	}

	const q = `
INSERT INTO tasks (id, user_id, title, description, priority, status)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING ` + taskCols + `;
`
	tr, err := scanTask(r.db.QueryRowContext(ctx, q,
		t.ID, t.UserID, t.Title, t.Description, string(t.Priority), string(t.Status),
	))
	if err != nil {
		return domain.Task{}, domain.ErrDBUnavailable(err)
	}
	return toDomainTask(tr), nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id string) (domain.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Task{}, domain.ErrMissingField("id")
	}

	const q = `
SELECT ` + taskCols + `
FROM tasks
WHERE id = $1
LIMIT 1;
`
	tr, err := scanTask(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound()
		}
		return domain.Task{}, domain.ErrDBUnavailable(err)
	}
	return toDomainTask(tr), nil
}

func (r *TaskRepo) ListByOwner(ctx context.Context, userID string) ([]domain.Task, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domain.ErrMissingField("user_id")
	}

	const q = `
SELECT ` + taskCols + `
FROM tasks
WHERE user_id = $1
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	out := make([]domain.Task, 0)
	for rows.Next() {
		tr, err := scanTask(rows)
		if err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, toDomainTask(tr))
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *TaskRepo) ListAllWithOwners(ctx context.Context) ([]domain.TaskWithOwner, error) {
	const q = `
SELECT t.id, t.user_id, t.title, t.description, t.priority, t.status, t.completed_at, t.created_at, t.updated_at,
       u.id, u.name, u.email
FROM tasks t
JOIN users u ON u.id = t.user_id
ORDER BY t.created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	out := make([]domain.TaskWithOwner, 0)
	for rows.Next() {
		var tr taskRow
		var owner domain.TaskOwner
		err := rows.Scan(
			&tr.ID,
			&tr.UserID,
			&tr.Title,
			&tr.Description,
			&tr.Priority,
			&tr.Status,
			&tr.CompletedAt,
			&tr.CreatedAt,
			&tr.UpdatedAt,
			&owner.ID,
			&owner.Name,
			&owner.Email,
		)
		if err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, domain.TaskWithOwner{Task: toDomainTask(tr), Owner: owner})
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *TaskRepo) Update(ctx context.Context, t domain.Task) (domain.Task, error) {
	if t.ID == "" {
		return domain.Task{}, domain.ErrMissingField("id")
	}

	const q = `
UPDATE tasks
SET title = $2,
    description = $3,
    priority = $4,
    status = $5,
    completed_at = $6,
    updated_at = NOW()
WHERE id = $1
RETURNING ` + taskCols + `;
`
	tr, err := scanTask(r.db.QueryRowContext(ctx, q,
		t.ID, t.Title, t.Description, string(t.Priority), string(t.Status), t.CompletedAt,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound()
		}
		return domain.Task{}, domain.ErrDBUnavailable(err)
	}
	return toDomainTask(tr), nil
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrMissingField("id")
	}

	const q = `DELETE FROM tasks WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrTaskNotFound()
	}
	return nil
}
