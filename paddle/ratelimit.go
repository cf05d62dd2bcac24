package paddle

import (
	"context"
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// rateLimiter encapsulates the local token-bucket rate limiting. Paddle does
// not publish hard per-key limits, so the local ceiling stays conservative
// (180 req/min) to avoid tripping server-side 429s in bulk traversals.
type rateLimiter struct {
	limiter        *rate.Limiter
	isAutoLimiting atomic.Bool
}

// newRateLimiter initializes a rate limiter configured for 180 requests per minute.
// The burst matches the limit to allow initial rapid requests.
func newRateLimiter() *rateLimiter {
	// 180 requests per minute = 3 requests per second
	limit := rate.Limit(180.0 / 60.0)

	rl := &rateLimiter{
		limiter: rate.NewLimiter(limit, 180),
	}
	rl.isAutoLimiting.Store(true) // Default to honoring local rate limits
	return rl
}

// Wait blocks until a token is available or the context is canceled.
func (rl *rateLimiter) Wait(ctx context.Context) error {
	if !rl.isAutoLimiting.Load() {
		return nil
	}
	return rl.limiter.Wait(ctx)
}

// SetAutoLimiting enables or disables the rate limiter.
func (rl *rateLimiter) SetAutoLimiting(enabled bool) {
	rl.isAutoLimiting.Store(enabled)
}

// calculateBackoff computes the duration to wait before the next retry attempt
// using exponential backoff with full jitter to avoid thundering herd.
func calculateBackoff(attempt int, base, max time.Duration) time.Duration {
	if base <= 0 {
		base = time.Second
	}
	if max <= 0 {
		max = 60 * time.Second
	}

	// Exponential backoff: base * 2^attempt
	backoff := float64(base) * math.Pow(2, float64(attempt))

	// Cap at maximum backoff
	if backoff > float64(max) {
		backoff = float64(max)
	}

	// Apply full jitter
	jitter := rand.Float64() * backoff

	return time.Duration(jitter)
}
