package redis

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := NewClient(NewRedisConfig().WithHost(mr.Host()).WithPort(port))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

type cachedPoint struct {
	Temperature float64 `json:"temperature"`
	WindSpeed   string  `json:"windSpeed"`
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(NewRedisConfig().WithPort(0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
}

func TestCache_SetAndGet(t *testing.T) {
	client, mr := newTestClient(t)
	client.GetConfig().WithCacheTTL("weather-conditions", 10*time.Minute)
	cache := NewCache(client, NewCacheOptions().WithCacheName("weather-conditions"))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "40.7128,-74.0060", cachedPoint{Temperature: 82, WindSpeed: "12 mph"}))
	assert.True(t, mr.Exists("weather-conditions::40.7128,-74.0060"))
	assert.Equal(t, 10*time.Minute, mr.TTL("weather-conditions::40.7128,-74.0060"))

	var got cachedPoint
	found, err := cache.Get(ctx, "40.7128,-74.0060", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, cachedPoint{Temperature: 82, WindSpeed: "12 mph"}, got)
}

func TestCache_Miss(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewCache(client, NewCacheOptions().WithCacheName("weather-conditions"))

	var got cachedPoint
	found, err := cache.Get(context.Background(), "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_Expired(t *testing.T) {
	client, mr := newTestClient(t)
	cache := NewCache(client, NewCacheOptions().WithCacheName("weather-conditions"))
	ctx := context.Background()

	require.NoError(t, cache.SetWithTTL(ctx, "k", cachedPoint{Temperature: 70}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var got cachedPoint
	found, err := cache.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLockWithFunc_RunsAndReleases(t *testing.T) {
	client, mr := newTestClient(t)
	opts := NewLockOptions().WithLockNamespace("lock").WithMaxRetries(0)

	ran := false
	err := LockWithFunc(context.Background(), client, "weather-refresh", opts, func() error {
		ran = true
		assert.True(t, mr.Exists("lock::weather-refresh"))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
	assert.False(t, mr.Exists("lock::weather-refresh"))
}

func TestLockWithFunc_HeldElsewhere(t *testing.T) {
	client, mr := newTestClient(t)
	require.NoError(t, mr.Set("lock::weather-refresh", "other-instance"))
	opts := NewLockOptions().WithLockNamespace("lock").WithMaxRetries(0)

	err := LockWithFunc(context.Background(), client, "weather-refresh", opts, func() error {
		t.Fatal("function must not run without the lock")
		return nil
	})

	assert.True(t, errors.Is(err, ErrLockNotAcquired))
	value, _ := mr.Get("lock::weather-refresh")
	assert.Equal(t, "other-instance", value)
}

func TestLockWithFunc_PropagatesError(t *testing.T) {
	client, _ := newTestClient(t)
	boom := errors.New("boom")

	err := LockWithFunc(context.Background(), client, "job", NewLockOptions().WithMaxRetries(0), func() error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestHealthCheck(t *testing.T) {
	client, mr := newTestClient(t)

	report := client.HealthCheck(context.Background())
	assert.Equal(t, StatusUp, report.Status)
	assert.Equal(t, mr.Addr(), report.Details["address"])

	mr.Close()
	report = client.HealthCheck(context.Background())
	assert.Equal(t, StatusDown, report.Status)
	assert.NotEmpty(t, report.Details["error"])
}
