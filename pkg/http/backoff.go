package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// StatusError is returned when the server answers with a non 2xx status
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// BackoffConfig configures retries with exponential delay between attempts.
type BackoffConfig struct {
	// MaxRetries is the number of attempts after the first one
	MaxRetries int
	// InitialInterval is the delay before the first retry
	InitialInterval time.Duration
	// MaxInterval caps the delay between retries
	MaxInterval time.Duration
	// Multiplier grows the delay after every retry
	Multiplier float64
	// RetryOnStatus lists the HTTP statuses worth retrying. Network errors are always retried.
	RetryOnStatus []int
}

// DefaultBackoffConfig retries three times on 429 and 5xx gateway statuses
func DefaultBackoffConfig() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:      3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		Multiplier:      2,
		RetryOnStatus: []int{
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		},
	}
}

// WithMaxRetries sets the number of attempts after the first one, zero disables retries
func (b *BackoffConfig) WithMaxRetries(maxRetries int) *BackoffConfig {
	b.MaxRetries = maxRetries
	return b
}

func (b *BackoffConfig) shouldRetry(status int, err error) bool {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return true
	}
	for _, retryStatus := range b.RetryOnStatus {
		if retryStatus == status {
			return true
		}
	}
	return false
}

func (b *BackoffConfig) nextInterval(current time.Duration) time.Duration {
	multiplier := b.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	next := time.Duration(float64(current) * multiplier)
	if b.MaxInterval > 0 && next > b.MaxInterval {
		return b.MaxInterval
	}
	return next
}

// sendWithBackoff sends r, retrying according to the request or client backoff.
// Without any backoff configured a single attempt is made.
func (hc *Client) sendWithBackoff(r *Request) (any, any, int, error) {
	backoff := r.backoff
	if backoff == nil {
		backoff = hc.defaultBackoff
	}
	if backoff == nil || backoff.MaxRetries <= 0 {
		return hc.send(r)
	}

	interval := backoff.InitialInterval
	for attempt := 0; ; attempt++ {
		success, failure, status, err := hc.send(r)
		if err == nil || attempt >= backoff.MaxRetries || !backoff.shouldRetry(status, err) {
			return success, failure, status, err
		}

		select {
		case <-r.ctx.Done():
			return nil, failure, status, r.ctx.Err()
		case <-time.After(interval):
		}
		interval = backoff.nextInterval(interval)
	}
}
