package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"golf-api/internal/domain/usecase/weather"
	"golf-api/pkg/log"
	"golf-api/pkg/msg"
	"golf-api/pkg/redis"
)

const (
	schedulerLockKey       = "weather_refresh_scheduler"
	schedulerLockNamespace = "weather_schedules"
	defaultLockTTL         = time.Minute
)

// WeatherSchedulerConfig holds configuration for the weather scheduler
type WeatherSchedulerConfig struct {
	CronExpression string
	// LockTTL must stay below the cron period so every tick can take the lock again
	LockTTL time.Duration
}

// WeatherScheduler enqueues the refresh of the configured points. Every instance runs the cron,
// only the one taking the redis lock enqueues on a given tick.
type WeatherScheduler struct {
	cron        *cron.Cron
	useCase     weather.UseCase
	redisClient *redis.Client
	config      WeatherSchedulerConfig
}

// NewWeatherScheduler creates a new weather scheduler with distributed locking support
func NewWeatherScheduler(useCase weather.UseCase, redisClient *redis.Client, config WeatherSchedulerConfig) *WeatherScheduler {
	if config.LockTTL <= 0 {
		config.LockTTL = defaultLockTTL
	}
	return &WeatherScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      config,
	}
}

// InitWeatherScheduleTasks registers the refresh task and starts the cron
func (s *WeatherScheduler) InitWeatherScheduleTasks(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.config.CronExpression, func() {
		s.ExecuteScheduledTask(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Info(msg.GetMessage("weather.schedule.started", s.config.CronExpression))
	return nil
}

// ExecuteScheduledTask enqueues every refresh point if no other instance did it for this tick
func (s *WeatherScheduler) ExecuteScheduledTask(ctx context.Context) {
	requestID := uuid.NewString()

	// the lock is left to expire so instances firing later in the same tick skip it
	lock := redis.NewLock(s.redisClient, schedulerLockKey, redis.NewLockOptions().
		WithTTL(s.config.LockTTL).
		WithMaxRetries(0).
		WithLockNamespace(schedulerLockNamespace))

	if err := lock.Lock(ctx); err != nil {
		if errors.Is(err, redis.ErrLockNotAcquired) {
			log.Debug(msg.GetMessage("weather.schedule.skipped"), zap.String("request_id", requestID))
			return
		}
		log.Error(msg.GetMessage("weather.schedule.failed"), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("weather.schedule.start"), zap.String("request_id", requestID))
	if err := s.useCase.EnqueueRefresh(ctx, requestID); err != nil {
		log.Error(msg.GetMessage("weather.schedule.failed"), zap.String("request_id", requestID), zap.Error(err))
		return
	}
	log.Info(msg.GetMessage("weather.schedule.end"), zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler
func (s *WeatherScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
