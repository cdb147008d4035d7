package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"golf-api/configs"
	_ "golf-api/docs"
	"golf-api/internal/application/controller"
	"golf-api/internal/application/middleware"
	"golf-api/internal/application/processor"
	"golf-api/internal/application/schedule"
	"golf-api/internal/domain/gateway/api"
	"golf-api/internal/domain/gateway/cache"
	"golf-api/internal/domain/gateway/db"
	"golf-api/internal/domain/gateway/queue"
	"golf-api/internal/domain/usecase/auth"
	"golf-api/internal/domain/usecase/calculation"
	"golf-api/internal/domain/usecase/club"
	"golf-api/internal/domain/usecase/health"
	"golf-api/internal/domain/usecase/weather"
	"golf-api/internal/infra/aws"
	"golf-api/internal/infra/database"
	gormdb "golf-api/internal/infra/database/gorm"
	"golf-api/internal/infra/database/pgsql"
	"golf-api/pkg/http"
	"golf-api/pkg/log"
	"golf-api/pkg/metrics"
	"golf-api/pkg/msg"
	"golf-api/pkg/redis"
	"golf-api/pkg/resource"
	"golf-api/pkg/sqs"
)

const refreshWorkerName = "weather_refresh"

// @title Golf API
// @version 1.0
// @description Golf club distances adjusted for temperature, humidity and wind.
// @BasePath /golf
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	appName := configs.Env.ApplicationName
	defer log.Sync()
	log.Info(msg.GetMessage("app.start", appName))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	dbConfig := database.Config{
		Host:            resource.GetString("app.db.host"),
		Port:            resource.GetString("app.db.port"),
		Username:        resource.GetString("app.db.username"),
		Password:        resource.GetString("app.db.password"),
		Database:        resource.GetString("app.db.database"),
		Schema:          resource.GetString("app.db.schema"),
		SSLMode:         resource.GetString("app.db.ssl-mode"),
		MaxOpenConns:    resource.GetInt("app.db.max-open-conns"),
		MaxIdleConns:    resource.GetInt("app.db.max-idle-conns"),
		ConnMaxLifetime: resource.GetDuration("app.db.conn-max-lifetime"),
	}
	gormDB, err := gormdb.Open(dbConfig)
	if err != nil {
		log.Fatal("Fail to connect database", zap.Error(err))
	}

	redisClient, err := redis.NewClient(redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithCacheTTL(cache.ConditionsCacheName, resource.GetDuration("app.weather.cache-ttl")))
	if err != nil {
		log.Fatal("Fail to create redis client", zap.Error(err))
	}
	defer redisClient.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(registry)

	// Init Gateways
	userGateway := db.NewGormUserGateway(gormDB)
	var clubGateway db.ClubGateway
	var healthDBGateway db.HealthDBGateway
	switch client := resource.GetString("app.db.client"); client {
	case "sql":
		sqlDB, err := pgsql.Open(ctx, dbConfig)
		if err != nil {
			log.Fatal("Fail to connect database", zap.Error(err))
		}
		defer sqlDB.Close()
		clubGateway = db.NewSQLClubGateway(sqlDB)
		healthDBGateway = db.NewSQLHealthDBGateway(sqlDB)
	case "", "gorm":
		clubGateway = db.NewGormClubGateway(gormDB)
		healthDBGateway = db.NewGormHealthDBGateway(gormDB)
	default:
		log.Fatalf("Unknown database client %q, use gorm or sql", client)
	}

	weatherGateway := api.NewWeatherGateway(
		resource.GetString("app.weather.base-url"),
		resource.GetString("app.weather.user-agent"),
		http.ClientOptions{
			ConnectionTimeout: resource.GetDuration("app.weather.connection-timeout"),
			ReadTimeout:       resource.GetDuration("app.weather.read-timeout"),
			Backoff:           http.DefaultBackoffConfig().WithMaxRetries(resource.GetInt("app.weather.max-retries")),
		},
	)
	conditionsCache := cache.NewRedisConditionsCache(redisClient)
	queueHealthGateway := queue.NewQueueHealthGateway()

	queueName := resource.GetString("app.weather.queue-name")
	var queueSender queue.Sender
	var sqsClient sqs.WorkerClient
	if queueName != "" {
		awsConfig, err := aws.NewConfig(ctx, aws.CloudConfig{
			Region:          resource.GetString("app.cloud.aws-region"),
			Endpoint:        resource.GetString("app.cloud.aws-endpoint"),
			AccessKeyID:     resource.GetString("app.cloud.aws-access-key-id"),
			SecretAccessKey: resource.GetString("app.cloud.aws-secret-access-key"),
		})
		if err != nil {
			log.Fatal("Fail to load AWS config", zap.Error(err))
		}
		client := aws.NewSqsClient(awsConfig)
		sqsClient = client
		queueSender = aws.NewSQSSenderAdapter(client)
	}

	refreshPoints, err := weather.ParseLocations(resource.GetStringSlice("app.weather.refresh.points"))
	if err != nil {
		log.Fatal("Invalid weather refresh points", zap.Error(err))
	}

	// Init UseCase
	clock := clockwork.NewRealClock()
	authUseCase := auth.NewAuthUseCase(userGateway, auth.Config{
		Secret:         []byte(resource.GetString("app.auth.jwt-secret")),
		Issuer:         resource.GetString("app.auth.issuer"),
		TokenTTL:       resource.GetDuration("app.auth.token-ttl"),
		RefreshTTL:     resource.GetDuration("app.auth.refresh-ttl"),
		BcryptCost:     resource.GetInt("app.auth.bcrypt-cost"),
		AdminUsernames: resource.GetStringSlice("app.auth.admin-usernames"),
	}, clock)
	clubUseCase := club.NewClubUseCase(clubGateway, userGateway)
	weatherUseCase := weather.NewWeatherUseCase(weather.Config{
		QueueName:     queueName,
		RefreshPoints: refreshPoints,
	}, weatherGateway, conditionsCache, queueSender, appMetrics, clock)
	calculationUseCase := calculation.NewCalculationUseCase(clubUseCase, weatherUseCase, appMetrics)
	healthUseCase := health.NewHealthUseCase(healthDBGateway, cache.NewRedisHealthGateway(redisClient), queueHealthGateway)

	// Init Worker and Schedule
	if queueName != "" {
		weatherProcessor := processor.NewWeatherProcessor(weatherUseCase, redisClient, resource.GetDuration("app.weather.refresh.lock-ttl"))
		worker, err := sqs.NewWorker(ctx, sqsClient, queueName, weatherProcessor, &sqs.WorkerConfig{
			PoolSize: resource.GetInt("app.weather.refresh.worker-pool-size"),
		})
		if err != nil {
			log.Fatal("Fail to create weather refresh worker", zap.Error(err))
		}
		queueHealthGateway.RegisterWorker(refreshWorkerName, worker)
		go worker.Start(ctx)

		weatherScheduler := schedule.NewWeatherScheduler(weatherUseCase, redisClient, schedule.WeatherSchedulerConfig{
			CronExpression: resource.GetString("app.weather.refresh.cron"),
			LockTTL:        resource.GetDuration("app.weather.refresh.lock-ttl"),
		})
		if err := weatherScheduler.InitWeatherScheduleTasks(ctx); err != nil {
			log.Fatal("Fail to start weather refresh scheduler", zap.Error(err))
		}
		defer weatherScheduler.Stop()
	} else {
		log.Info(msg.GetMessage("weather.refresh.disabled"))
	}

	// Init Routes
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = controller.HTTPErrorHandler
	e.Use(echomw.Recover())
	middleware.SetupRequestLogger(e)
	apiGroup := e.Group(resource.GetString("app.server.context-path"))

	requireAuth := middleware.RequireAuth(authUseCase)
	controller.NewHealthController(apiGroup, healthUseCase).InitHealthRoutes()
	controller.NewAuthController(apiGroup, authUseCase, requireAuth, middleware.RequireAdmin()).InitAuthRoutes()
	controller.NewProfileController(apiGroup, clubUseCase, requireAuth).InitProfileRoutes()
	controller.NewCalculationController(apiGroup, calculationUseCase, requireAuth).InitCalculationRoutes()
	controller.NewWeatherController(apiGroup, weatherUseCase, requireAuth).InitWeatherRoutes()
	apiGroup.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	apiGroup.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", appName, port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatal("Fail to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping", appName))

	shutdownTimeout := resource.GetDuration("app.server.shutdown-timeout")
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Fail to shut down server", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped", appName))
}
