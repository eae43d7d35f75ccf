package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  5,
		DefaultWindow: time.Minute,
		Rules: []Rule{
			{Method: "POST", PathPrefix: "/simulations", Limit: 2, Window: time.Minute},
		},
	}
}

func TestLimiter_AllowsWithinLimit(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("client-1", "/health", "GET")
		assert.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 5, info.Limit)
	}
}

func TestLimiter_BlocksOverLimit(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("client-1", "/health", "GET")
		require.True(t, allowed)
	}

	allowed, info := limiter.Allow("client-1", "/health", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_RuleMatchesSimulationEndpoint(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	allowed, info := limiter.Allow("client-1", "/simulations", "POST")
	require.True(t, allowed)
	assert.Equal(t, 2, info.Limit)

	allowed, _ = limiter.Allow("client-1", "/simulations", "POST")
	require.True(t, allowed)

	allowed, _ = limiter.Allow("client-1", "/simulations", "POST")
	assert.False(t, allowed, "third simulation run in the window should be blocked")
}

func TestLimiter_RuleOnlyMatchesMethod(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	// GET on the same path uses the default limit, not the POST rule.
	allowed, info := limiter.Allow("client-1", "/simulations", "GET")
	require.True(t, allowed)
	assert.Equal(t, 5, info.Limit)
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("client-1", "/health", "GET")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("client-1", "/health", "GET")
	require.False(t, allowed)

	allowed, _ = limiter.Allow("client-2", "/health", "GET")
	assert.True(t, allowed, "a different client has its own bucket")
}

func TestLimiter_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("client-1", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_Refill(t *testing.T) {
	cfg := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: 100 * time.Millisecond,
	}
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("client-1", "/health", "GET")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("client-1", "/health", "GET")
	require.False(t, allowed)

	time.Sleep(50 * time.Millisecond)

	allowed, _ = limiter.Allow("client-1", "/health", "GET")
	assert.True(t, allowed, "tokens should refill over time")
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 120, cfg.DefaultLimit)
	require.Len(t, cfg.Rules, 1)
	assert.Equal(t, "POST", cfg.Rules[0].Method)
	assert.Equal(t, "/simulations", cfg.Rules[0].PathPrefix)
	assert.Equal(t, 10, cfg.Rules[0].Limit)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_DEFAULT", "42")
	t.Setenv("RATE_LIMIT_SIMULATE", "3")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.Equal(t, 3, cfg.Rules[0].Limit)
}

func TestLimiter_StopIsIdempotent(t *testing.T) {
	limiter := NewLimiter(testConfig())
	limiter.Stop()
	limiter.Stop()
}
