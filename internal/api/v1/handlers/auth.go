package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"taskmanager/internal/models"
	"taskmanager/internal/repository"
	"taskmanager/internal/service"
	"taskmanager/pkg/logger"
)

// AuthHandler exposes the register and login endpoints.
type AuthHandler struct {
	auth     *service.AuthService
	validate *validator.Validate
}

func NewAuthHandler(auth *service.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{auth: auth, validate: validate}
}

// Register creates an account and returns the signed token string.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in register", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Bad request",
			"success": false,
			"status":  400,
		})
	}

	if err := h.validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during register", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  err.Error(),
			"success": false,
			"status":  400,
		})
	}

	token, err := h.auth.Register(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken), errors.Is(err, repository.ErrUsernameTaken):
			logger.SecurityLogger.Warn("Duplicate registration",
				zap.String("email", req.Email),
				zap.String("username", req.UserName),
			)
			return c.Status(409).JSON(fiber.Map{
				"message": err.Error(),
				"success": false,
				"status":  409,
			})
		case errors.Is(err, repository.ErrWeakPassword):
			return c.Status(400).JSON(fiber.Map{
				"message": err.Error(),
				"success": false,
				"status":  400,
			})
		default:
			logger.ErrorLogger.Error("Error creating user", zap.Error(err))
			return c.Status(500).JSON(fiber.Map{
				"message": "Error creating user",
				"success": false,
				"status":  500,
			})
		}
	}

	return c.Status(201).JSON(token)
}

// Login verifies credentials and returns the token plus profile fields.
// Unknown email and wrong password produce the same 401 response.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in login", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Bad request",
			"success": false,
			"status":  400,
		})
	}

	if err := h.validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during login", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  err.Error(),
			"success": false,
			"status":  400,
		})
	}

	resp, err := h.auth.Login(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(401).JSON(fiber.Map{
				"message": "Invalid credentials",
				"success": false,
				"status":  401,
			})
		}
		logger.ErrorLogger.Error("Error during login", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error during login",
			"success": false,
			"status":  500,
		})
	}

	return c.JSON(resp)
}
