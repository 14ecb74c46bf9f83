package domain

import "time"

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Task is owned by exactly one user; UserID is set at creation and never
// reassigned. CompletedAt is non-nil exactly while Status is Completed.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Priority    Priority
	Status      Status
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskOwner is the owner identity attached to admin task listings.
type TaskOwner struct {
	ID    string
	Name  string
	Email string
}

// TaskWithOwner pairs a task with its owner for the admin list view.
type TaskWithOwner struct {
	Task
	Owner TaskOwner
}
