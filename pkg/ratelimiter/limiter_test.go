package ratelimiter_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nipvalidator/pkg/config"
	"github.com/dmitrymomot/nipvalidator/pkg/ratelimiter"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock { return &clock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)} }

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newLimiter(t *testing.T, cfg ratelimiter.Config, c *clock) *ratelimiter.Limiter {
	t.Helper()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0), ratelimiter.WithClock(c.Now))
	t.Cleanup(store.Close)
	l, err := ratelimiter.New(store, cfg)
	require.NoError(t, err)
	return l
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()

	for _, cfg := range []ratelimiter.Config{
		{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1, RefillInterval: 0},
	} {
		_, err := ratelimiter.New(store, cfg)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig, "%+v", cfg)
	}
}

func TestLimiter_Allow(t *testing.T) {
	t.Parallel()

	c := newClock()
	l := newLimiter(t, ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Second}, c)
	ctx := context.Background()

	for i := 2; i >= 0; i-- {
		res, err := l.Allow(ctx, "client")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, i, res.Remaining)
		assert.Equal(t, 3, res.Limit)
		assert.Zero(t, res.RetryAfter())
	}

	res, err := l.Allow(ctx, "client")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, -1, res.Remaining)

	// Rejections do not push the refill further away.
	res, err = l.Allow(ctx, "client")
	require.NoError(t, err)
	assert.Equal(t, -1, res.Remaining)

	other, err := l.Allow(ctx, "other")
	require.NoError(t, err)
	assert.True(t, other.Allowed())

	c.Advance(time.Second)
	res, err = l.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 0, res.Remaining)

	c.Advance(time.Hour)
	res, err = l.Allow(ctx, "client")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Remaining, "refill is capped at capacity")
}

func TestLimiter_Errors(t *testing.T) {
	t.Parallel()

	l := newLimiter(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second}, newClock())

	_, err := l.AllowN(context.Background(), "client", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)

	_, err = l.Allow(context.Background(), "")
	assert.ErrorIs(t, err, ratelimiter.ErrEmptyKey)
}

func TestLimiter_Reset(t *testing.T) {
	t.Parallel()

	l := newLimiter(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute}, newClock())
	ctx := context.Background()

	_, _ = l.Allow(ctx, "client")
	res, _ := l.Allow(ctx, "client")
	require.False(t, res.Allowed())

	require.NoError(t, l.Reset(ctx, "client"))
	res, err := l.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
}

func TestLimiter_Concurrent(t *testing.T) {
	t.Parallel()

	l := newLimiter(t, ratelimiter.Config{Capacity: 50, RefillRate: 1, RefillInterval: time.Hour}, newClock())

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for range 200 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := l.Allow(context.Background(), "shared")
			if err == nil && res.Allowed() {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(50), allowed.Load())
}

func TestMemoryStore_Cleanup(t *testing.T) {
	t.Parallel()

	c := newClock()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(10*time.Millisecond), ratelimiter.WithClock(c.Now))
	defer store.Close()

	l, err := ratelimiter.New(store, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	require.NoError(t, err)
	_, _ = l.Allow(context.Background(), "idle")
	require.Equal(t, 1, store.Len())

	c.Advance(2 * time.Hour)
	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 10*time.Millisecond)

	store.Close()
	store.Close()
}

func TestConfig_FromEnv(t *testing.T) {
	t.Parallel()

	var cfg ratelimiter.Config
	require.NoError(t, config.Load(&cfg, config.WithPrefix("NIP_"), config.WithEnvironment(map[string]string{})))
	assert.False(t, cfg.Enabled())

	require.NoError(t, config.Load(&cfg, config.WithPrefix("NIP_"), config.WithEnvironment(map[string]string{
		"NIP_RATE_LIMIT_CAPACITY":        "20",
		"NIP_RATE_LIMIT_REFILL_INTERVAL": "500ms",
	})))
	assert.True(t, cfg.Enabled())
	assert.Equal(t, 20, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillRate)
	assert.Equal(t, 500*time.Millisecond, cfg.RefillInterval)
}
