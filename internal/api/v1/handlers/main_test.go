package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"taskmanager/internal/middleware"
	"taskmanager/internal/models"
	"taskmanager/internal/repository"
	"taskmanager/internal/service"
	"taskmanager/pkg/logger"
)

func TestMain(m *testing.M) {
	os.Setenv("GO_ENV", "test")
	logger.InitLoggers()
	defer logger.SyncLoggers()

	os.Exit(m.Run())
}

// In-memory stores backing the handler tests.

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
	user.ID = s.nextID
	s.nextID++
	s.users = append(s.users, user)
	s.passwords[user.ID] = password
	return nil
}

func (s *memUserStore) CheckPassword(user *models.User, password string) bool {
	return s.passwords[user.ID] == password
}

type memTaskStore struct {
	nextID int
	tasks  []models.Task
}

func (s *memTaskStore) Create(_ context.Context, task *models.Task) error {
	s.nextID++
	task.ID = s.nextID
	s.tasks = append(s.tasks, *task)
	return nil
}

func (s *memTaskStore) ListAll(_ context.Context) ([]models.Task, error) {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

// createTestApp wires a Fiber app over in-memory stores.
func createTestApp() *fiber.App {
	validate := validator.New()
	tokens := service.NewTokenIssuer("test-secret", "taskmanager", "taskmanager-clients")
	authHandler := NewAuthHandler(service.NewAuthService(newMemUserStore(), tokens), validate)
	taskHandler := NewTaskHandler(service.NewTaskService(&memTaskStore{}, nil), validate)

	app := fiber.New()
	app.Use(middleware.ErrorHandler())

	auth := app.Group("/api/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	task := app.Group("/api/task", middleware.RequireToken(tokens))
	task.Post("/create", taskHandler.Create)
	task.Post("/list", taskHandler.List)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Error encoding request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest("POST", path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request to %s failed: %v", path, err)
	}
	return resp
}

// registerUser creates a user and returns a valid bearer token.
func registerUser(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp := postJSON(t, app, "/api/auth/register", "", map[string]string{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     "jdoe@example.com",
		"userName":  "jdoe",
		"password":  "Secret123",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201 from register but got %d", resp.StatusCode)
	}

	var token string
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		t.Fatalf("Error decoding register response: %v", err)
	}
	if token == "" {
		t.Fatal("Expected a token from register")
	}
	return token
}
