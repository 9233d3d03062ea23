package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler/config"
)

func newTestLimiter(cfg config.RateLimitConfig, clock *time.Time) *RateLimiter {
	r := NewRateLimiter(cfg)
	r.now = func() time.Time { return *clock }
	r.lastSweep = *clock
	return r
}

func TestRateLimiter_IdleTTL(t *testing.T) {
	assert.Equal(t, minIdleTTL, NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 20, Burst: 40}).idleTTL)
	// one token every 1000s takes longer to refill than the minimum
	assert.Equal(t, 1000*time.Second, NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}).idleTTL)
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := newTestLimiter(config.RateLimitConfig{RequestsPerSecond: 20, Burst: 40}, &clock)

	first := r.limiter("10.0.0.1", clock)
	assert.Same(t, first, r.limiter("10.0.0.1", clock))

	clock = clock.Add(r.idleTTL / 2)
	r.limiter("10.0.0.2", clock)
	assert.Equal(t, 2, r.size())

	clock = clock.Add(r.idleTTL/2 + time.Second)
	r.limiter("10.0.0.3", clock)
	assert.Equal(t, 2, r.size())
	assert.NotContains(t, r.visitors, "10.0.0.1")
	assert.Contains(t, r.visitors, "10.0.0.2")

	assert.NotSame(t, first, r.limiter("10.0.0.1", clock))
}

func TestRateLimiter_ManyClientsDoNotAccumulate(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := newTestLimiter(config.RateLimitConfig{RequestsPerSecond: 20, Burst: 40}, &clock)

	for i := 0; i < 1000; i++ {
		clock = clock.Add(time.Second)
		r.limiter(time.Duration(i).String(), clock)
	}
	// never more than one TTL window of clients plus the sweep interval
	assert.LessOrEqual(t, r.size(), 2*int(r.idleTTL/time.Second)+1)
	assert.Less(t, r.size(), 1000)
}
