package ratelimiter

import (
	"context"
	"fmt"
	"time"
)

// Config defines a token bucket. Loaded with the "NIP_" prefix the variables
// read NIP_RATE_LIMIT_CAPACITY and so on. A zero Capacity disables limiting.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"0"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"1s"`
}

// Enabled reports whether the config asks for rate limiting at all.
func (c Config) Enabled() bool { return c.Capacity > 0 }

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result is the bucket state after a request.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Allowed reports whether the request fit into the bucket.
func (r Result) Allowed() bool { return r.Remaining >= 0 }

// RetryAfter returns how long a rejected client should wait. Zero when allowed.
func (r Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(time.Until(r.ResetAt), 0)
}

// Store persists bucket state.
type Store interface {
	// ConsumeTokens refills the bucket for the elapsed time and takes tokens
	// from it. A negative remaining count means the request must be denied.
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}

// Limiter is a token bucket limiter over a Store.
type Limiter struct {
	store Store
	cfg   Config
}

func New(store Store, cfg Config) (*Limiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Limiter{store: store, cfg: cfg}, nil
}

func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	return l.AllowN(ctx, key, 1)
}

func (l *Limiter) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	if key == "" {
		return Result{}, ErrEmptyKey
	}

	remaining, resetAt, err := l.store.ConsumeTokens(ctx, key, n, l.cfg)
	if err != nil {
		return Result{}, err
	}
	return Result{Limit: l.cfg.Capacity, Remaining: remaining, ResetAt: resetAt}, nil
}

// Reset forgets the bucket of key.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}
