package models

import (
	"database/sql"
	"time"
)

// TaskType is the category of a task, stored as its integer value.
type TaskType int

const (
	TaskTypeDaily   TaskType = 1
	TaskTypeWeekly  TaskType = 2
	TaskTypeMonthly TaskType = 3
)

// Valid reports whether t is one of the known task types.
func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeDaily, TaskTypeWeekly, TaskTypeMonthly:
		return true
	default:
		return false
	}
}

func (t TaskType) String() string {
	switch t {
	case TaskTypeDaily:
		return "daily"
	case TaskTypeWeekly:
		return "weekly"
	case TaskTypeMonthly:
		return "monthly"
	default:
		return "unknown"
	}
}

type User struct {
	ID           int       `json:"id"`
	UserName     string    `json:"userName"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Task struct {
	ID          int          `json:"id"`
	UserID      int          `json:"userId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	IsCompleted bool         `json:"isCompleted"`
	DueDate     sql.NullTime `json:"dueDate"`
	CompletedAt sql.NullTime `json:"completedAt"`
	Type        TaskType     `json:"type"`
	CreatedAt   time.Time    `json:"createdAt"`
}
