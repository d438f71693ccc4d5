package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"taskmanager/internal/models"
	"taskmanager/internal/repository"
	"taskmanager/pkg/logger"
)

// ErrInvalidCredentials is returned for both unknown email and wrong
// password, so callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService orchestrates registration and login over the identity
// store and the token issuer.
type AuthService struct {
	users  repository.UserStore
	tokens *TokenIssuer
}

func NewAuthService(users repository.UserStore, tokens *TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new account and returns a signed token for it.
// Duplicate email or username aborts with the store's typed conflict
// error; the unique indexes are the backstop for concurrent registers.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return "", repository.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return "", err
	}
	if _, err := s.users.FindByUsername(ctx, req.UserName); err == nil {
		return "", repository.ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return "", err
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		UserName:  req.UserName,
	}
	if err := s.users.Create(ctx, user, req.Password); err != nil {
		return "", err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", err
	}

	logger.AuditLogger.Info("User registered",
		zap.Int("user_id", user.ID),
		zap.String("username", user.UserName),
	)
	return token, nil
}

// Login verifies the credentials and returns a token plus the user's
// profile fields.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		logger.SecurityLogger.Warn("Login with unknown email", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !s.users.CheckPassword(user, req.Password) {
		logger.SecurityLogger.Warn("Login with wrong password", zap.Int("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	logger.AuditLogger.Info("Login success", zap.Int("user_id", user.ID))
	return &models.LoginResponse{
		Token:      token,
		UserName:   user.UserName,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Expiration: time.Now().UTC().Add(TokenTTL),
	}, nil
}
