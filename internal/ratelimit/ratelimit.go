// Package ratelimit provides a keyed token-bucket rate limiter. Used to
// slow down password guessing on the admin login endpoint.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// cleanupInterval is how often idle limiters are swept.
const cleanupInterval = 10 * time.Minute

// idleTimeout is how long a key can go unused before its limiter is
// dropped. An idle limiter has a full bucket anyway, so dropping it
// loses nothing.
const idleTimeout = time.Hour

type keyedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter manages per-key rate limiting. Each unique key (for
// login, the client IP) gets its own independent limiter.
type KeyedRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*keyedLimiter
	limit    rate.Limit
	burst    int
	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a new keyed rate limiter.
// rps: requests per second allowed.
// burst: maximum burst size (tokens available immediately).
func New(rps float64, burst int) *KeyedRateLimiter {
	krl := &KeyedRateLimiter{
		limiters: make(map[string]*keyedLimiter),
		limit:    rate.Limit(rps),
		burst:    burst,
		stop:     make(chan struct{}),
	}
	go krl.cleanupLoop()
	return krl
}

// Allow checks if a request for the given key should be allowed.
// Returns immediately without blocking.
func (krl *KeyedRateLimiter) Allow(key string) bool {
	return krl.getLimiter(key).Allow()
}

// Wait blocks until a request for the given key is allowed or the
// context is canceled. Use for outbound requests.
func (krl *KeyedRateLimiter) Wait(ctx context.Context, key string) error {
	return krl.getLimiter(key).Wait(ctx)
}

// Shutdown stops the cleanup goroutine. Safe to call more than once.
func (krl *KeyedRateLimiter) Shutdown() error {
	krl.stopOnce.Do(func() {
		close(krl.stop)
	})
	return nil
}

// getLimiter returns the limiter for a key, creating one if needed, and
// marks the key as recently used.
func (krl *KeyedRateLimiter) getLimiter(key string) *rate.Limiter {
	krl.mu.Lock()
	defer krl.mu.Unlock()

	kl, exists := krl.limiters[key]
	if !exists {
		kl = &keyedLimiter{limiter: rate.NewLimiter(krl.limit, krl.burst)}
		krl.limiters[key] = kl
	}
	kl.lastSeen = time.Now()
	return kl.limiter
}

func (krl *KeyedRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-krl.stop:
			return
		case <-ticker.C:
			krl.removeIdle(time.Now().Add(-idleTimeout))
		}
	}
}

// removeIdle drops limiters whose last use predates cutoff.
func (krl *KeyedRateLimiter) removeIdle(cutoff time.Time) {
	krl.mu.Lock()
	defer krl.mu.Unlock()

	for key, kl := range krl.limiters {
		if kl.lastSeen.Before(cutoff) {
			delete(krl.limiters, key)
		}
	}
}
