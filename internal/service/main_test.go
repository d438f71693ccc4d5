package service

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"taskmanager/internal/models"
	"taskmanager/internal/repository"
	"taskmanager/pkg/logger"
)

func TestMain(m *testing.M) {
	os.Setenv("GO_ENV", "test")
	logger.InitLoggers()
	defer logger.SyncLoggers()

	os.Exit(m.Run())
}

// memUserStore is an in-memory UserStore used by the service tests.
type memUserStore struct {
	nextID    int
	users     []*models.User
	passwords map[int]string
}

func newMemUserStore() *memUserStore {
	return &memUserStore{nextID: 1, passwords: map[int]string{}}
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *memUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range s.users {
		if u.UserName == username {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *memUserStore) Create(_ context.Context, user *models.User, password string) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return repository.ErrEmailTaken
		}
		if u.UserName == user.UserName {
			return repository.ErrUsernameTaken
		}
	}
	user.ID = s.nextID
	s.nextID++
	s.users = append(s.users, user)
	s.passwords[user.ID] = password
	return nil
}

func (s *memUserStore) CheckPassword(user *models.User, password string) bool {
	return s.passwords[user.ID] == password
}

// memReportCache is an in-memory ReportCache recording its traffic.
type memReportCache struct {
	data []byte
	ttl  time.Duration
	sets int
	dels int
}

func (c *memReportCache) Get(_ context.Context) ([]byte, error) {
	if c.data == nil {
		return nil, errors.New("cache miss")
	}
	return c.data, nil
}

func (c *memReportCache) Set(_ context.Context, data []byte, ttl time.Duration) error {
	c.data = data
	c.ttl = ttl
	c.sets++
	return nil
}

func (c *memReportCache) Del(_ context.Context) error {
	c.data = nil
	c.dels++
	return nil
}

// memTaskStore is an in-memory TaskStore used by the service tests.
type memTaskStore struct {
	nextID int
	tasks  []models.Task
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{nextID: 1}
}

func (s *memTaskStore) Create(_ context.Context, task *models.Task) error {
	task.ID = s.nextID
	s.nextID++
	s.tasks = append(s.tasks, *task)
	return nil
}

func (s *memTaskStore) ListAll(_ context.Context) ([]models.Task, error) {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}
