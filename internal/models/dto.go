package models

import "time"

// Request and response shapes for the HTTP API. Property names are
// camelCase on the wire.

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName" validate:"required,min=2,max=50"`
	Email     string `json:"email" validate:"required,email"`
	UserName  string `json:"userName" validate:"required,min=3,max=20"`
	Password  string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token      string    `json:"token"`
	UserName   string    `json:"userName"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Expiration time.Time `json:"expiration"`
}

type CreateTaskRequest struct {
	UserID      int        `json:"userId" validate:"required,gt=0"`
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=1000"`
	DueDate     *time.Time `json:"dueDate"`
	// Zero means the type was omitted; the service defaults it to daily.
	Type int `json:"type" validate:"omitempty,min=1,max=3"`
}

type TaskResponse struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Type        TaskType   `json:"type"`
	UserID      string     `json:"userId"`
}

type TaskReport struct {
	Type           TaskType       `json:"type"`
	TotalTasks     int            `json:"totalTasks"`
	CompletedTasks int            `json:"completedTasks"`
	PendingTasks   int            `json:"pendingTasks"`
	CompletionRate float64        `json:"completionRate"`
	Tasks          []TaskResponse `json:"tasks"`
}
