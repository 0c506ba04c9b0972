package infrastructures

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient returns nil when no Redis address is configured
func NewRedisClient(config *AppConfig) *redis.Client {
	if config.REDIS_ADDRESS == "" {
		logrus.Warn("REDIS_ADDRESS not set, rate limiting falls back to in-memory storage")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.REDIS_ADDRESS,
		Password: config.REDIS_PASSWORD,
		DB:       0, // use default DB
	})

	// Test the connection
	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.Fatalf("failed to connect redis: %v", err)
	}

	return client
}
