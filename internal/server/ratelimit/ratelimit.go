// Package ratelimit throttles API clients with per-route token buckets.
// The concierge chat route is the expensive one, so it gets the tightest
// budget; intake and profile writes sit in a middle tier, and reads fall
// through to a generous default
package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const idleEviction = time.Hour

// Info reports the outcome of a rate limit check so the server can set
// X-RateLimit-* headers on the response
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config controls the limiter. Exempt clients bypass every bucket and
// Blocked clients are refused outright; both are keyed by client IP
type Config struct {
	Enabled      bool
	DefaultLimit int
	Window       time.Duration
	SweepEvery   time.Duration
	Exempt       map[string]bool
	Blocked      map[string]bool
	Rules        []Rule
}

// FromEnv builds a Config from RATE_LIMIT_* environment variables,
// falling back to the built-in route rules and a 1000 req/min default
func FromEnv() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:      true,
		DefaultLimit: envInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		Window:       envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		SweepEvery:   envDuration("RATE_LIMIT_SWEEP_INTERVAL", 5*time.Minute),
		Exempt:       envClientSet("RATE_LIMIT_EXEMPT"),
		Blocked:      envClientSet("RATE_LIMIT_BLOCKED"),
		Rules:        defaultRules(),
	}
}

// bucket is a token bucket refilled continuously at rate tokens/second
type bucket struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	rate     float64
	updated  time.Time
}

func newBucket(capacity int, rate float64) *bucket {
	return &bucket{
		tokens:   float64(capacity),
		capacity: float64(capacity),
		rate:     rate,
		updated:  time.Now(),
	}
}

// take refills from elapsed time, then spends one token if available.
// reset is when the bucket would be full again
func (b *bucket) take() (ok bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.updated).Seconds()*b.rate)
	b.updated = now

	if b.tokens >= 1 {
		b.tokens--
		ok = true
	}

	remaining = int(b.tokens)
	reset = now
	if b.tokens < b.capacity {
		reset = now.Add(time.Duration((b.capacity - b.tokens) / b.rate * float64(time.Second)))
	}
	return ok, remaining, reset
}

// Limiter tracks a bucket per client+route pair and sweeps idle ones
type Limiter struct {
	cfg     *Config
	mu      sync.Mutex
	buckets map[string]*clientBucket
	done    chan struct{}
}

type clientBucket struct {
	*bucket
	seen time.Time
}

// New creates a Limiter. A nil cfg enables limiting with the defaults
// from FromEnv minus the environment overrides
func New(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = &Config{
			Enabled:      true,
			DefaultLimit: 1000,
			Window:       time.Minute,
			SweepEvery:   5 * time.Minute,
			Rules:        defaultRules(),
		}
	}

	l := &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*clientBucket),
		done:    make(chan struct{}),
	}
	if cfg.Enabled && cfg.SweepEvery > 0 {
		go l.sweepLoop(cfg.SweepEvery)
	}
	return l
}

// Allow decides whether a request from clientID may proceed on the
// given path and method
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.cfg.Enabled || l.cfg.Exempt[clientID] {
		return true, Info{Allowed: true}
	}
	if l.cfg.Blocked[clientID] {
		return false, Info{}
	}

	rule := findRule(l.cfg.Rules, path, method)
	if rule == nil {
		rule = &Rule{Limit: l.cfg.DefaultLimit, Window: l.cfg.Window}
	}
	if rule.Limit <= 0 {
		// Unlimited route, e.g. GET /health
		return true, Info{Allowed: true}
	}

	b := l.bucketFor(clientID+" "+method+" "+path, rule)
	ok, remaining, reset := b.take()

	info := Info{
		Allowed:   ok,
		Limit:     rule.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !ok {
		info.RetryAfter = max(time.Until(reset), 0)
	}
	return ok, info
}

func (l *Limiter) bucketFor(key string, rule *Rule) *bucket {
	capacity := rule.Burst
	if capacity <= 0 {
		capacity = rule.Limit
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	cb, ok := l.buckets[key]
	if !ok {
		cb = &clientBucket{bucket: newBucket(capacity, float64(rule.Limit)/rule.Window.Seconds())}
		l.buckets[key] = cb
	}
	cb.seen = time.Now()
	return cb.bucket
}

func (l *Limiter) sweepLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-l.done:
			return
		}
	}
}

// sweep drops buckets no client has touched within idleEviction
func (l *Limiter) sweep() {
	cutoff := time.Now().Add(-idleEviction)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, cb := range l.buckets {
		if cb.seen.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop ends the background sweep
func (l *Limiter) Stop() {
	select {
	case <-l.done:
	default:
		close(l.done)
	}
}

func envBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

// envClientSet parses a comma-separated list of client IPs
func envClientSet(key string) map[string]bool {
	set := make(map[string]bool)
	for _, ip := range strings.Split(os.Getenv(key), ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			set[ip] = true
		}
	}
	return set
}
