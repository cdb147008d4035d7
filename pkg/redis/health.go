package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthStatus is UP when the server answers a ping, DOWN otherwise
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// HealthReport is the outcome of a Redis health check
type HealthReport struct {
	Status  HealthStatus
	Details map[string]string
}

// HealthCheck pings the server and reports connection pool statistics
func (c *Client) HealthCheck(ctx context.Context) HealthReport {
	start := time.Now()
	err := c.Ping(ctx)
	stats := c.rdb.PoolStats()

	details := map[string]string{
		"address":     c.config.Addr(),
		"database":    strconv.Itoa(c.config.Database),
		"latency":     time.Since(start).String(),
		"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
		"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
	}

	if err != nil {
		details["error"] = err.Error()
		return HealthReport{Status: StatusDown, Details: details}
	}
	return HealthReport{Status: StatusUp, Details: details}
}
