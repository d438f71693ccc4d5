package database

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"taskmanager/configs"
	"taskmanager/pkg/logger"
)

func ConnectRedis(ctx context.Context, cfg configs.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: "",
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.ErrorLogger.Error("Redis connection error", zap.Error(err))
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	return client
}
