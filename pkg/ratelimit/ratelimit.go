package ratelimit

import (
	"context"
	"time"
)

// Rate defines the rate limit configuration
type Rate struct {
	// Requests is the number of requests allowed in the window
	Requests int
	// Window is the time window for the rate limit
	Window time.Duration
}

// Info contains information about the current rate limit status
type Info struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// Limiter decides whether a request identified by key may proceed
type Limiter interface {
	Allow(ctx context.Context, key string, rate Rate) (bool, Info)
	Reset(ctx context.Context, key string) error
}

func info(rate Rate, used int, now time.Time) (bool, Info) {
	remaining := rate.Requests - used
	return remaining >= 0, Info{
		Limit:     rate.Requests,
		Remaining: max(remaining, 0),
		Reset:     now.Add(rate.Window),
	}
}
