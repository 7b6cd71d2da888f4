// Package ratelimit provides per-client rate limiting using the token
// bucket algorithm. Generation requests fan out to a paid model API, so the
// server throttles clients before they reach the pipeline.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// TokenBucket allows a burst of requests up to its capacity, with tokens
// refilling at a steady rate.
type TokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes a token if one is available.
func (tb *TokenBucket) allow() (ok bool, remaining int, reset time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens += elapsed.Seconds() * tb.refillRate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		ok = true
	}

	remaining = int(tb.tokens)
	reset = now
	if tb.tokens < float64(tb.capacity) {
		secondsUntilFull := (float64(tb.capacity) - tb.tokens) / tb.refillRate
		reset = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return ok, remaining, reset
}

// Info reports the limit state for response headers.
type Info struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetTime time.Time
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	Limit           int           // requests per window
	Window          time.Duration // refill window
	CleanupInterval time.Duration
}

// LoadConfig reads the rate limit configuration from the environment,
// falling back to defaults suitable for a demo deployment.
func LoadConfig() *Config {
	cfg := &Config{
		Enabled:         true,
		Limit:           60,
		Window:          time.Minute,
		CleanupInterval: 5 * time.Minute,
	}
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		cfg.Enabled = v != "false" && v != "0"
	}
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Limit = n
		}
	}
	return cfg
}

// Limiter manages one token bucket per client.
type Limiter struct {
	mu         sync.Mutex
	buckets    map[string]*TokenBucket
	lastAccess map[string]time.Time
	config     *Config

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = LoadConfig()
	}
	l := &Limiter{
		buckets:    make(map[string]*TokenBucket),
		lastAccess: make(map[string]time.Time),
		config:     config,
	}
	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanup()
	}
	return l
}

// Allow checks whether a request from the client may proceed.
func (l *Limiter) Allow(clientID string) Info {
	if !l.config.Enabled {
		return Info{Allowed: true}
	}

	l.mu.Lock()
	bucket, ok := l.buckets[clientID]
	if !ok {
		refillRate := float64(l.config.Limit) / l.config.Window.Seconds()
		bucket = newTokenBucket(l.config.Limit, refillRate)
		l.buckets[clientID] = bucket
	}
	l.lastAccess[clientID] = time.Now()
	l.mu.Unlock()

	allowed, remaining, reset := bucket.allow()
	return Info{
		Allowed:   allowed,
		Limit:     l.config.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
	}
}

// cleanup evicts buckets for clients idle longer than two cleanup intervals.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupStop:
			return
		case <-l.cleanupTicker.C:
			cutoff := time.Now().Add(-2 * l.config.CleanupInterval)
			l.mu.Lock()
			for id, last := range l.lastAccess {
				if last.Before(cutoff) {
					delete(l.buckets, id)
					delete(l.lastAccess, id)
				}
			}
			l.mu.Unlock()
		}
	}
}
