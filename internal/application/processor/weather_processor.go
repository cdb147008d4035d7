package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"golf-api/internal/domain/gateway/cache"
	"golf-api/internal/domain/model"
	"golf-api/internal/domain/usecase/weather"
	"golf-api/pkg/log"
	"golf-api/pkg/msg"
	"golf-api/pkg/redis"
	"golf-api/pkg/sqs"
)

const refreshLockNamespace = "weather-refresh"

type WeatherProcessor struct {
	weatherUseCase weather.UseCase
	redisClient    *redis.Client
	lockTTL        time.Duration
}

var _ sqs.Handler = (*WeatherProcessor)(nil)

// NewWeatherProcessor creates the refresh queue handler. With a redis client, a location already
// being refreshed by another worker is skipped.
func NewWeatherProcessor(weatherUseCase weather.UseCase, redisClient *redis.Client, lockTTL time.Duration) *WeatherProcessor {
	if lockTTL <= 0 {
		lockTTL = 30 * time.Second
	}
	return &WeatherProcessor{
		weatherUseCase: weatherUseCase,
		redisClient:    redisClient,
		lockTTL:        lockTTL,
	}
}

// HandleMessage implements the sqs.Handler interface
func (p *WeatherProcessor) HandleMessage(ctx context.Context, message *types.Message) error {
	if message == nil || message.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	var location model.Location
	if err := json.Unmarshal([]byte(*message.Body), &location); err != nil {
		return fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	key := cache.LocationKey(location)
	messageID := aws.ToString(message.MessageId)
	log.Debug(msg.GetMessage("weather.refresh.received", key), zap.String("message_id", messageID))

	refresh := func() error {
		if _, err := p.weatherUseCase.RefreshConditions(ctx, location); err != nil {
			return fmt.Errorf("failed to refresh conditions for %s: %w", key, err)
		}
		return nil
	}

	if p.redisClient == nil {
		return refresh()
	}

	opts := redis.NewLockOptions().
		WithTTL(p.lockTTL).
		WithMaxRetries(0).
		WithLockNamespace(refreshLockNamespace)

	err := redis.LockWithFunc(ctx, p.redisClient, key, opts, refresh)
	if errors.Is(err, redis.ErrLockNotAcquired) {
		log.Info(msg.GetMessage("weather.refresh.in-progress", key), zap.String("message_id", messageID))
		return nil
	}
	if err != nil {
		return err
	}

	log.Info(msg.GetMessage("weather.refresh.done", key), zap.String("message_id", messageID))
	return nil
}
