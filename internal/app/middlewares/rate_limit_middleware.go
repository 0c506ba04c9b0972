package middlewares

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/redis/go-redis/v9"
	"github.com/safatanc/course-library/internal/app/errors"
	"github.com/safatanc/course-library/internal/app/pkg"
	"github.com/safatanc/course-library/internal/infrastructures"
	"github.com/safatanc/course-library/pkg/ratelimit"
)

// RateLimitMiddleware handles rate limiting
type RateLimitMiddleware struct {
	backend ratelimit.Limiter
	rate    ratelimit.Rate
}

// NewRateLimitMiddleware creates a new RateLimitMiddleware. A nil backend limits
// requests in process memory.
func NewRateLimitMiddleware(backend ratelimit.Limiter, config *infrastructures.AppConfig) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		backend: backend,
		rate: ratelimit.Rate{
			Requests: config.RATE_LIMIT_REQUESTS,
			Window:   config.RATE_LIMIT_WINDOW,
		},
	}
}

// NewLimiter returns the Redis limiter, or nil when no Redis client is configured
func NewLimiter(client *redis.Client) ratelimit.Limiter {
	if client == nil {
		return nil
	}
	return ratelimit.NewRedisLimiter(client, "course-library")
}

// LimitByIP creates a middleware that rate limits by IP address
func (m *RateLimitMiddleware) LimitByIP() fiber.Handler {
	if m.backend == nil {
		return limiter.New(limiter.Config{
			Max:               m.rate.Requests,
			Expiration:        m.rate.Window,
			KeyGenerator:      ipKey,
			LimiterMiddleware: limiter.SlidingWindow{},
			LimitReached:      limitReached,
		})
	}

	return func(c *fiber.Ctx) error {
		allowed, info := m.backend.Allow(c.UserContext(), ipKey(c), m.rate)

		c.Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(info.Reset.Unix(), 10))

		if !allowed {
			return limitReached(c)
		}

		return c.Next()
	}
}

func ipKey(c *fiber.Ctx) string {
	return fmt.Sprintf("ip:%s", getIPAddress(c))
}

func limitReached(c *fiber.Ctx) error {
	return pkg.ErrorResponse(c, errors.NewTooManyRequestsError("Rate limit exceeded"))
}

// getIPAddress gets the client IP address from request
func getIPAddress(c *fiber.Ctx) string {
	// Try X-Forwarded-For header
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	// Try X-Real-IP header
	if xrip := c.Get("X-Real-IP"); xrip != "" {
		return xrip
	}

	// Fall back to RemoteIP
	return c.IP()
}
