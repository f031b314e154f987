package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"climate-api/configs"
	"climate-api/docs"
	"climate-api/internal/application/controller"
	"climate-api/internal/application/middleware"
	"climate-api/internal/application/schedule"
	"climate-api/internal/domain/gateway/cache"
	"climate-api/internal/domain/gateway/db"
	"climate-api/internal/domain/usecase/climate"
	"climate-api/internal/domain/usecase/health"
	"climate-api/internal/infra/database"
	gormdb "climate-api/internal/infra/database/gorm"
	"climate-api/internal/infra/database/sqlc"
	"climate-api/pkg/log"
	"climate-api/pkg/msg"
	"climate-api/pkg/redis"
	"climate-api/pkg/resource"
)

// @title climate-api
// @version 1.0
// @description Read-only climate observations of the Hawaii weather station dataset.
// @BasePath /
func main() {
	propertiesPath := flag.String("properties", configs.Env.PropertiesFilePath, "application properties file")
	flag.Parse()

	log.Info(msg.GetMessage("app.start"))

	if err := run(*propertiesPath); err != nil {
		log.Fatal(err.Error(), zap.Error(err))
	}
	log.Sync()
}

func run(propertiesPath string) error {
	if err := loadProperties(propertiesPath); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init store
	dbConfig, err := database.NewConfigFromProperties()
	if err != nil {
		return err
	}
	store, err := openStore(ctx, dbConfig, resource.GetString("app.db.client"))
	if err != nil {
		log.Error(msg.GetMessage("db.connect-failed", dbConfig.Driver, err), zap.Error(err))
		return err
	}
	defer store.close()

	if err = store.climateGateway.ValidateSchema(ctx); err != nil {
		log.Error(msg.GetMessage("db.schema-invalid", err), zap.Error(err))
		return err
	}
	log.Info(msg.GetMessage("db.schema-valid"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.SetupRecover(e)
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)

	var cacheChecker *redis.HealthChecker
	if resource.GetBool("app.rate-limit.enabled") {
		redisClient, limiter, err := newRateLimiter(ctx)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		cacheChecker = redis.NewHealthChecker(redisClient, resource.GetDuration("app.redis.timeout"))
		e.Use(middleware.RateLimit(limiter))
	}

	contextPath := resource.GetString("app.server.context-path")
	api := e.Group(contextPath)

	docs.SwaggerInfo.BasePath = contextPath + "/"
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(store.healthGateway, cache.NewRedisHealthGateway(cacheChecker))
	climateUseCase := climate.NewClimateUseCase(store.climateGateway, resource.GetBool("app.climate.strict-dates"))

	// Init Controller
	healthController := controller.NewHealthController(api, healthUseCase)
	climateController := controller.NewClimateController(api, contextPath, climateUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	climateController.InitClimateRoutes()

	// Init Schedule
	probeScheduler := schedule.NewStoreProbeScheduler(store.healthGateway, store.climateGateway,
		resource.GetDuration("app.db.probe.timeout"))
	if err = probeScheduler.InitStoreProbeTasks(resource.GetString("app.db.probe.cron")); err != nil {
		return fmt.Errorf("store probe schedule: %w", err)
	}
	defer probeScheduler.Stop()

	// Start Routes
	address := ":" + resource.GetString("app.server.port")
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(address)
	}()
	log.Info(msg.GetMessage("app.started", address))

	select {
	case <-ctx.Done():
	case err = <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	log.Info(msg.GetMessage("app.stopping"))
	shutdownTimeout := resource.GetDuration("app.server.shutdown-timeout")
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info(msg.GetMessage("app.stopped"))
	return nil
}

// loadProperties reads the properties file, falling back to the bundled defaults
func loadProperties(path string) error {
	if err := resource.Init(path); err != nil {
		log.Warn(msg.GetMessage("app.config-fallback", path), zap.Error(err))
		if err = resource.InitFromBytes(configs.DefaultProperties); err != nil {
			return err
		}
	} else {
		log.Info(msg.GetMessage("app.config-loaded", path))
	}

	if level := resource.GetString("app.log.level"); level != "" {
		log.SetLevel(level)
	}
	return nil
}

type storeGateways struct {
	climateGateway db.ClimateGateway
	healthGateway  db.HealthDBGateway
	close          func() error
}

// openStore builds the gateways for the configured client over one shared pool
func openStore(ctx context.Context, config database.Config, client string) (*storeGateways, error) {
	switch client {
	case "", "gorm":
		gormDB, err := gormdb.Open(ctx, config)
		if err != nil {
			return nil, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, err
		}
		log.Info(msg.GetMessage("db.connected", config.Driver, "gorm"))
		return &storeGateways{
			climateGateway: db.NewGormClimateGateway(gormDB),
			healthGateway:  db.NewGormHealthDBGateway(gormDB),
			close:          sqlDB.Close,
		}, nil
	case "sql":
		sqlDB, err := sqlc.Open(ctx, config)
		if err != nil {
			return nil, err
		}
		log.Info(msg.GetMessage("db.connected", config.Driver, "sql"))
		return &storeGateways{
			climateGateway: db.NewSQLCClimateGateway(sqlDB),
			healthGateway:  db.NewSQLCHealthDBGateway(sqlDB, config.Driver),
			close:          sqlDB.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported db client %q, expected gorm or sql", client)
	}
}

// newRateLimiter connects to redis; an unreachable redis only logs, the limiter fails open
func newRateLimiter(ctx context.Context) (*redis.Client, *redis.RateLimiter, error) {
	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))

	client, err := redis.NewClient(config)
	if err != nil {
		return nil, nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err = client.Ping(pingCtx); err != nil {
		log.Warn(msg.GetMessage("redis.unreachable", config.Addr(), err), zap.Error(err))
	} else {
		log.Info(msg.GetMessage("redis.connected", config.Addr()))
	}

	opts := redis.NewRateLimiterOptions().
		WithMaxRequestsPerSecond(resource.GetInt("app.rate-limit.per-second")).
		WithMaxRequestsPerMinute(resource.GetInt("app.rate-limit.per-minute")).
		WithNamespace(resource.GetString("app.rate-limit.namespace"))

	limiter, err := redis.NewRateLimiter(client, opts)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return client, limiter, nil
}
