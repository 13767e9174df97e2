package api

import (
	"time"

	"github.com/framelightapp/framelight-server/internal/ratelimit"
)

// RateLimiter wraps KeyedRateLimiter for API use.
type RateLimiter = ratelimit.KeyedRateLimiter

// minuteInterval is the rate window used by the API limiters.
const minuteInterval = time.Minute

// NewRateLimiter creates a new rate limiter.
// ratePerInterval: number of requests allowed per interval.
// interval: time period for the rate (e.g., time.Minute).
// burst: maximum burst size.
func NewRateLimiter(ratePerInterval int, interval time.Duration, burst int) *RateLimiter {
	rps := float64(ratePerInterval) / interval.Seconds()
	return ratelimit.New(rps, burst)
}
