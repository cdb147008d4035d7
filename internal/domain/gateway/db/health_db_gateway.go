package db

import (
	"context"
	"time"

	"golf-api/internal/domain/model"
)

const healthPingTimeout = 2 * time.Second

type HealthDBGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

type pinger interface {
	PingContext(ctx context.Context) error
}

func pingHealth(ctx context.Context, db pinger, driver string) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"driver":  driver,
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"driver":  driver,
			"message": string(model.StatusUp),
		},
	}
}
