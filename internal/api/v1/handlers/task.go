package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"taskmanager/internal/models"
	"taskmanager/internal/service"
	"taskmanager/pkg/logger"
)

// TaskHandler exposes task creation and the completion report.
type TaskHandler struct {
	tasks    *service.TaskService
	validate *validator.Validate
}

func NewTaskHandler(tasks *service.TaskService, validate *validator.Validate) *TaskHandler {
	return &TaskHandler{tasks: tasks, validate: validate}
}

// Create persists a new task and returns true on success. Types outside
// 1..3 never reach the store, validation rejects them here.
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var req models.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in create task", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Bad request",
			"success": false,
			"status":  400,
		})
	}

	if err := h.validate.Struct(req); err != nil {
		logger.ErrorLogger.Error("Validation error in create task", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  err.Error(),
			"success": false,
			"status":  400,
		})
	}

	// A due date, when given, cannot be before today.
	if req.DueDate != nil {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		if req.DueDate.Before(today) {
			logger.ErrorLogger.Error("Past due date in create task")
			return c.Status(400).JSON(fiber.Map{
				"message": "Due date cannot be in the past",
				"success": false,
				"status":  400,
			})
		}
	}

	ok, err := h.tasks.Create(c.Context(), req)
	if err != nil {
		logger.ErrorLogger.Error("Error creating task", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error creating task",
			"success": false,
			"status":  500,
		})
	}

	return c.JSON(ok)
}

// List returns one report entry per task type present in the data.
func (h *TaskHandler) List(c *fiber.Ctx) error {
	report, err := h.tasks.Report(c.Context())
	if err != nil {
		logger.ErrorLogger.Error("Error building task report", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error building task report",
			"success": false,
			"status":  500,
		})
	}

	return c.JSON(report)
}
