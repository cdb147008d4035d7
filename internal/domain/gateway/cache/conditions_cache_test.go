package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golf-api/internal/domain/entity"
	"golf-api/internal/domain/model"
	"golf-api/pkg/redis"
)

func TestRedisConditionsCache(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := redis.NewClient(redis.NewRedisConfig().
		WithHost(mr.Host()).
		WithPort(port).
		WithCacheTTL(ConditionsCacheName, 15*time.Minute))
	require.NoError(t, err)
	defer client.Close()

	conditionsCache := NewRedisConditionsCache(client)
	ctx := context.Background()
	location := model.Location{Latitude: 40.712776, Longitude: -74.005974}

	_, found, err := conditionsCache.Get(ctx, location)
	require.NoError(t, err)
	assert.False(t, found)

	conditions := entity.WeatherConditions{
		Latitude:      location.Latitude,
		Longitude:     location.Longitude,
		Temperature:   "82",
		WindSpeed:     "8 to 12 mph",
		WindDirection: "WSW",
		Humidity:      "64",
		FetchedAt:     time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC),
	}
	require.NoError(t, conditionsCache.Set(ctx, location, conditions))

	assert.True(t, mr.Exists("weather-conditions::40.7128,-74.0060"))
	assert.Equal(t, 15*time.Minute, mr.TTL("weather-conditions::40.7128,-74.0060"))

	nearby := model.Location{Latitude: 40.71281, Longitude: -74.00601}
	got, found, err := conditionsCache.Get(ctx, nearby)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, conditions, *got)
}
