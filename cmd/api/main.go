package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"

	"taskmanager/configs"
	v1 "taskmanager/internal/api/v1"
	"taskmanager/internal/api/v1/handlers"
	"taskmanager/internal/middleware"
	"taskmanager/internal/repository"
	"taskmanager/internal/service"
	"taskmanager/pkg/database"
	"taskmanager/pkg/logger"
)

func main() {
	logger.InitLoggers()
	defer logger.SyncLoggers()
	logger.SystemLogger.Info("Starting application", zap.String("time", time.Now().Format(time.RFC3339)))

	cfg := configs.LoadConfig()

	db := database.ConnectDB(cfg)
	defer db.Close()
	logger.SystemLogger.Info("Database Connected")

	repository.CreateTableIfNotExists(db)

	redisClient := database.ConnectRedis(context.Background(), cfg)
	defer redisClient.Close()

	// Wire stores, services and handlers
	validate := validator.New()
	userStore := repository.NewPostgresUserStore(db)
	taskStore := repository.NewPostgresTaskStore(db)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	authService := service.NewAuthService(userStore, tokens)
	taskService := service.NewTaskService(taskStore, service.NewRedisReportCache(redisClient))
	authHandler := handlers.NewAuthHandler(authService, validate)
	taskHandler := handlers.NewTaskHandler(taskService, validate)

	app := fiber.New()

	// Middleware
	app.Use(middleware.ErrorHandler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
	}))

	v1.RegisterRoutes(app, authHandler, taskHandler, tokens)

	addr := fmt.Sprintf(":%d", cfg.AppPort)
	logger.SystemLogger.Info("Application ready", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		logger.ErrorLogger.Error("Application failed to start", zap.Error(err))
	}
}
