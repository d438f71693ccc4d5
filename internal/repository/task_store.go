package repository

import (
	"context"
	"database/sql"

	"taskmanager/internal/models"
)

// TaskStore persists task records.
type TaskStore interface {
	Create(ctx context.Context, task *models.Task) error
	ListAll(ctx context.Context) ([]models.Task, error)
}

type PostgresTaskStore struct {
	db *sql.DB
}

func NewPostgresTaskStore(db *sql.DB) *PostgresTaskStore {
	return &PostgresTaskStore{db: db}
}

func (s *PostgresTaskStore) Create(ctx context.Context, task *models.Task) error {
	return s.db.QueryRowContext(ctx,
		"INSERT INTO tasks (user_id, title, description, is_completed, due_date, type, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id",
		task.UserID, task.Title, task.Description, task.IsCompleted, task.DueDate, int(task.Type), task.CreatedAt,
	).Scan(&task.ID)
}

func (s *PostgresTaskStore) ListAll(ctx context.Context) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, title, description, is_completed, due_date, completed_at, type, created_at FROM tasks")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		var description sql.NullString
		err := rows.Scan(&t.ID, &t.UserID, &t.Title, &description, &t.IsCompleted, &t.DueDate, &t.CompletedAt, &t.Type, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		t.Description = description.String
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}
