package repository

import (
	"context"
	"database/sql"
	"errors"
	"unicode"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"taskmanager/internal/models"
)

var (
	// ErrUserNotFound is returned by lookups that match no row.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken and ErrUsernameTaken map the unique indexes on the
	// users table, so the check-then-create race is closed at the store.
	ErrEmailTaken    = errors.New("email already in use")
	ErrUsernameTaken = errors.New("username already in use")
	// ErrWeakPassword is returned when the password policy is not met.
	ErrWeakPassword = errors.New("password must be at least 6 characters and contain a digit, a lowercase and an uppercase letter")
)

// UserStore owns user credential storage and verification.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User, password string) error
	CheckPassword(user *models.User, password string) bool
}

type PostgresUserStore struct {
	db *sql.DB
}

func NewPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

const userColumns = "id, username, email, first_name, last_name, password, created_at"

func (s *PostgresUserStore) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.UserName, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email)
	return s.scanUser(row)
}

func (s *PostgresUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE username = $1", username)
	return s.scanUser(row)
}

// Create hashes the password and inserts the user, filling in the
// generated id and creation time. Unique violations are mapped to the
// typed conflict errors.
func (s *PostgresUserStore) Create(ctx context.Context, user *models.User, password string) error {
	if !validPassword(password) {
		return ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	err = s.db.QueryRowContext(ctx,
		"INSERT INTO users (username, email, first_name, last_name, password) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at",
		user.UserName, user.Email, user.FirstName, user.LastName, string(hashed),
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			if pqErr.Constraint == "users_email_key" {
				return ErrEmailTaken
			}
			return ErrUsernameTaken
		}
		return err
	}
	user.PasswordHash = string(hashed)
	return nil
}

func (s *PostgresUserStore) CheckPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// validPassword enforces the store's password policy: min length 6 with
// at least one digit, one lowercase and one uppercase letter.
func validPassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	return hasDigit && hasLower && hasUpper
}
