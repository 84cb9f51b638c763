package garmin

import (
	"context"
	"sync"
	"time"
)

// Garmin evaluation rate limits:
// - 100 requests per minute
// - 10000 requests per day

// RateLimiter manages Garmin API rate limits
type RateLimiter struct {
	mu sync.Mutex

	// Per-minute window
	minuteLimit    int
	minuteUsage    int
	minuteResetsAt time.Time

	// Daily window
	dailyLimit    int
	dailyUsage    int
	dailyResetsAt time.Time

	// Minimum interval between requests
	minInterval time.Duration
	lastRequest time.Time
}

// NewRateLimiter creates a new rate limiter with Garmin's limits
func NewRateLimiter() *RateLimiter {
	now := time.Now()
	return &RateLimiter{
		minuteLimit:    100,
		minuteResetsAt: now.Add(time.Minute),
		dailyLimit:     10000,
		dailyResetsAt:  now.Truncate(24 * time.Hour).Add(24 * time.Hour),
		minInterval:    100 * time.Millisecond,
	}
}

// Wait blocks until a request can be made without exceeding rate limits
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()

	// Reset windows if expired
	if now.After(r.minuteResetsAt) {
		r.minuteUsage = 0
		r.minuteResetsAt = now.Add(time.Minute)
	}
	if now.After(r.dailyResetsAt) {
		r.dailyUsage = 0
		r.dailyResetsAt = now.Truncate(24 * time.Hour).Add(24 * time.Hour)
	}

	// Check per-minute limit
	if r.minuteUsage >= r.minuteLimit {
		waitTime := time.Until(r.minuteResetsAt)
		r.mu.Unlock()
		select {
		case <-time.After(waitTime):
		case <-ctx.Done():
			return ctx.Err()
		}
		r.mu.Lock()
		r.minuteUsage = 0
		r.minuteResetsAt = time.Now().Add(time.Minute)
	}

	// Check daily limit
	if r.dailyUsage >= r.dailyLimit {
		waitTime := time.Until(r.dailyResetsAt)
		r.mu.Unlock()
		select {
		case <-time.After(waitTime):
		case <-ctx.Done():
			return ctx.Err()
		}
		r.mu.Lock()
		r.dailyUsage = 0
		r.dailyResetsAt = time.Now().Truncate(24 * time.Hour).Add(24 * time.Hour)
	}

	// Enforce minimum interval between requests
	elapsed := time.Since(r.lastRequest)
	if elapsed < r.minInterval {
		waitTime := r.minInterval - elapsed
		r.mu.Unlock()
		select {
		case <-time.After(waitTime):
		case <-ctx.Done():
			return ctx.Err()
		}
		r.mu.Lock()
	}

	r.minuteUsage++
	r.dailyUsage++
	r.lastRequest = time.Now()

	return nil
}

// Status returns current rate limit headroom
func (r *RateLimiter) Status() (minuteRemaining, dailyRemaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.minuteLimit - r.minuteUsage, r.dailyLimit - r.dailyUsage
}

// Usage returns current usage counts
func (r *RateLimiter) Usage() (minuteUsage, dailyUsage int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.minuteUsage, r.dailyUsage
}
