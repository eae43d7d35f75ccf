// Package ratelimit provides per-client rate limiting using a token bucket.
package ratelimit

import (
	"math"
	"os"
	"strconv"
	"sync"
	"time"
)

// Info describes the rate-limit state reported back to the client.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Rule is a per-endpoint limit. Method and path prefix are matched against
// the incoming request; the first matching rule wins.
type Rule struct {
	Method     string
	PathPrefix string
	Limit      int           // requests per window
	Window     time.Duration // refill window
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled       bool
	DefaultLimit  int
	DefaultWindow time.Duration
	Rules         []Rule
}

// LoadConfig builds the configuration from environment variables with
// conservative defaults: 120 requests/minute overall and 10 simulation runs
// per minute, since simulation is the CPU-bound endpoint.
func LoadConfig() *Config {
	cfg := &Config{
		Enabled:       true,
		DefaultLimit:  120,
		DefaultWindow: time.Minute,
		Rules: []Rule{
			{Method: "POST", PathPrefix: "/simulations", Limit: 10, Window: time.Minute},
		},
	}

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		cfg.Enabled = v != "false" && v != "0"
	}
	if v := os.Getenv("RATE_LIMIT_DEFAULT"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			cfg.DefaultLimit = limit
		}
	}
	if v := os.Getenv("RATE_LIMIT_SIMULATE"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			cfg.Rules[0].Limit = limit
		}
	}
	return cfg
}

// bucket is a token bucket refilling at a steady rate, guarded by the
// limiter's mutex.
type bucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

func (b *bucket) refill(now time.Time) {
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = math.Min(float64(b.capacity), b.tokens+elapsed*b.refillRate)
	b.lastRefill = now
}

// Limiter manages token buckets keyed by client ID and matched rule.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config
	stop    chan struct{}
	once    sync.Once
}

// NewLimiter creates a new rate limiter and starts its idle-bucket cleanup.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = LoadConfig()
	}
	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
		stop:    make(chan struct{}),
	}
	go l.cleanupLoop(5 * time.Minute)
	return l
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

// Allow reports whether the client may perform the request, consuming one
// token when it may.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	limit, window, ruleKey := l.match(path, method)

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	key := clientID + "|" + ruleKey
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{
			capacity:   limit,
			refillRate: float64(limit) / window.Seconds(),
			tokens:     float64(limit),
			lastRefill: now,
		}
		l.buckets[key] = b
	}
	b.refill(now)
	b.lastAccess = now

	info := Info{Limit: limit}
	if b.tokens >= 1 {
		b.tokens--
		info.Allowed = true
	} else {
		info.RetryAfter = time.Duration((1 - b.tokens) / b.refillRate * float64(time.Second))
	}
	info.Remaining = int(b.tokens)
	tokensNeeded := float64(b.capacity) - b.tokens
	info.ResetTime = now.Add(time.Duration(tokensNeeded / b.refillRate * float64(time.Second)))
	return info.Allowed, info
}

// match finds the first rule covering the request, or the default limit.
func (l *Limiter) match(path, method string) (int, time.Duration, string) {
	for _, rule := range l.config.Rules {
		if rule.Method == method && hasPrefix(path, rule.PathPrefix) {
			return rule.Limit, rule.Window, rule.Method + " " + rule.PathPrefix
		}
	}
	return l.config.DefaultLimit, l.config.DefaultWindow, "default"
}

func hasPrefix(path, prefix string) bool {
	return len(path) >= len(prefix) && path[:len(prefix)] == prefix
}

// cleanupLoop drops buckets that have been idle long enough to be full again.
func (l *Limiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-interval)
			l.mu.Lock()
			for key, b := range l.buckets {
				if b.lastAccess.Before(cutoff) {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		}
	}
}
