package cache

import (
	"context"
	"fmt"

	"golf-api/internal/domain/entity"
	"golf-api/internal/domain/model"
	"golf-api/pkg/redis"
)

// ConditionsCacheName is the key prefix and TTL entry of cached weather conditions
const ConditionsCacheName = "weather-conditions"

// ConditionsCache keeps the latest weather conditions per location
type ConditionsCache interface {
	Get(ctx context.Context, location model.Location) (*entity.WeatherConditions, bool, error)
	Set(ctx context.Context, location model.Location, conditions entity.WeatherConditions) error
}

type redisConditionsCache struct {
	cache *redis.Cache
}

func NewRedisConditionsCache(client *redis.Client) ConditionsCache {
	return &redisConditionsCache{
		cache: redis.NewCache(client, redis.NewCacheOptions().WithCacheName(ConditionsCacheName)),
	}
}

// LocationKey rounds the coordinates to four decimals, about eleven meters
func LocationKey(location model.Location) string {
	return fmt.Sprintf("%.4f,%.4f", location.Latitude, location.Longitude)
}

func (c *redisConditionsCache) Get(ctx context.Context, location model.Location) (*entity.WeatherConditions, bool, error) {
	var conditions entity.WeatherConditions
	found, err := c.cache.Get(ctx, LocationKey(location), &conditions)
	if err != nil || !found {
		return nil, false, err
	}
	return &conditions, true, nil
}

func (c *redisConditionsCache) Set(ctx context.Context, location model.Location, conditions entity.WeatherConditions) error {
	return c.cache.Set(ctx, LocationKey(location), conditions)
}
