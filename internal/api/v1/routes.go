package v1

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/internal/api/v1/handlers"
	"taskmanager/internal/middleware"
	"taskmanager/internal/service"
)

func RegisterRoutes(app *fiber.App, auth *handlers.AuthHandler, task *handlers.TaskHandler, tokens *service.TokenIssuer) {
	api := app.Group("/api")

	// Auth
	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", auth.Register)
	authRoutes.Post("/login", auth.Login)

	// Task
	taskRoutes := api.Group("/task", middleware.RequireToken(tokens))
	taskRoutes.Post("/create", task.Create)
	taskRoutes.Post("/list", task.List)
}
