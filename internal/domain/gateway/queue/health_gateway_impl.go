package queue

import (
	"strconv"
	"sync"

	"golf-api/internal/domain/model"
	"golf-api/pkg/sqs"
)

// QueueHealthGateway aggregates the health of the registered SQS workers.
// With no worker registered the background refresh is off and the status is UNKNOWN.
type QueueHealthGateway struct {
	mu      sync.RWMutex
	workers map[string]WorkerHealthChecker
}

var _ HealthGateway = (*QueueHealthGateway)(nil)

func NewQueueHealthGateway() *QueueHealthGateway {
	return &QueueHealthGateway{workers: map[string]WorkerHealthChecker{}}
}

func (g *QueueHealthGateway) RegisterWorker(name string, worker WorkerHealthChecker) {
	g.mu.Lock()
	g.workers[name] = worker
	g.mu.Unlock()
}

func (g *QueueHealthGateway) UnregisterWorker(name string) {
	g.mu.Lock()
	delete(g.workers, name)
	g.mu.Unlock()
}

func (g *QueueHealthGateway) Health() model.ComponentHealthStatus {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.workers) == 0 {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"message": "weather refresh is disabled", "workers_count": "0"},
		}
	}

	details := map[string]string{}
	up := 0
	for name, worker := range g.workers {
		report := worker.HealthCheck()
		status := model.StatusDown
		if report.Status == sqs.StatusUp {
			status = model.StatusUp
			up++
		}
		details[name+"_status"] = string(status)
		for key, value := range report.Details {
			details[name+"_"+key] = value
		}
	}

	down := len(g.workers) - up
	details["workers_total"] = strconv.Itoa(len(g.workers))
	details["workers_up"] = strconv.Itoa(up)
	details["workers_down"] = strconv.Itoa(down)

	overall := model.StatusUp
	if down > 0 {
		overall = model.StatusDown
	}
	return model.ComponentHealthStatus{Status: overall, Details: details}
}
