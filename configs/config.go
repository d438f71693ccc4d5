package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     int
	DBHost      string
	DBPort      int
	DBUser      string
	DBPassword  string
	DBName      string
	RedisHost   string
	RedisPort   int
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
}

func LoadConfig() Config {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		// Only log when not running tests
		if os.Getenv("GO_ENV") != "test" {
			log.Println("No .env file found, using default values")
		}
	}

	appPort, err := strconv.Atoi(os.Getenv("APP_PORT"))
	if err != nil {
		appPort = 3004
	}

	dbPort, err := strconv.Atoi(os.Getenv("DB_PORT"))
	if err != nil {
		dbPort = 5432
	}

	redisPort, err := strconv.Atoi(os.Getenv("REDIS_PORT"))
	if err != nil {
		redisPort = 6379
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "secret"
	}
	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "taskmanager"
	}
	audience := os.Getenv("JWT_AUDIENCE")
	if audience == "" {
		audience = "taskmanager-clients"
	}

	return Config{
		AppPort:     appPort,
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      dbPort,
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		RedisHost:   os.Getenv("REDIS_HOST"),
		RedisPort:   redisPort,
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTAudience: audience,
	}
}
