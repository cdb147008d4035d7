package cache

import (
	"context"

	"golf-api/internal/domain/model"
	"golf-api/pkg/redis"
)

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

type RedisHealthGateway struct {
	client *redis.Client
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{client: client}
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	report := gateway.client.HealthCheck(ctx)
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(report.Status),
		Details: report.Details,
	}
}
