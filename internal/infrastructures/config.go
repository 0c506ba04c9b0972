package infrastructures

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	PORT                string
	DATABASE_URL        string
	REDIS_ADDRESS       string
	REDIS_PASSWORD      string
	LOG_LEVEL           string
	AUTO_MIGRATE        bool
	DEFAULT_PAGE_SIZE   int
	MAX_PAGE_SIZE       int
	RATE_LIMIT_REQUESTS int
	RATE_LIMIT_WINDOW   time.Duration
}

// LoadConfig reads .env (if present) and the process environment
func LoadConfig() *AppConfig {
	godotenv.Load()

	return &AppConfig{
		PORT:                getEnv("PORT", "8080"),
		DATABASE_URL:        os.Getenv("DATABASE_URL"),
		REDIS_ADDRESS:       os.Getenv("REDIS_ADDRESS"),
		REDIS_PASSWORD:      os.Getenv("REDIS_PASSWORD"),
		LOG_LEVEL:           getEnv("LOG_LEVEL", "info"),
		AUTO_MIGRATE:        getEnvBool("AUTO_MIGRATE", false),
		DEFAULT_PAGE_SIZE:   getEnvInt("DEFAULT_PAGE_SIZE", 10),
		MAX_PAGE_SIZE:       getEnvInt("MAX_PAGE_SIZE", 20),
		RATE_LIMIT_REQUESTS: getEnvInt("RATE_LIMIT_REQUESTS", 60),
		RATE_LIMIT_WINDOW:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
