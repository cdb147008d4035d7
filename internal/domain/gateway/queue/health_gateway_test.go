package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golf-api/internal/domain/model"
	"golf-api/pkg/sqs"
)

type stubWorker struct {
	health sqs.WorkerHealth
}

func (w stubWorker) HealthCheck() sqs.WorkerHealth {
	return w.health
}

func TestQueueHealthGateway(t *testing.T) {
	gateway := NewQueueHealthGateway()

	assert.Equal(t, model.StatusUnknown, gateway.Health().Status)

	gateway.RegisterWorker("weather", stubWorker{health: sqs.WorkerHealth{
		Status:  sqs.StatusUp,
		Details: map[string]string{"queue": "weather-refresh"},
	}})
	health := gateway.Health()
	assert.Equal(t, model.StatusUp, health.Status)
	assert.Equal(t, "weather-refresh", health.Details["weather_queue"])
	assert.Equal(t, "1", health.Details["workers_up"])

	gateway.RegisterWorker("other", stubWorker{health: sqs.WorkerHealth{Status: sqs.StatusDown}})
	health = gateway.Health()
	assert.Equal(t, model.StatusDown, health.Status)
	assert.Equal(t, "1", health.Details["workers_down"])

	gateway.UnregisterWorker("other")
	assert.Equal(t, model.StatusUp, gateway.Health().Status)
}
