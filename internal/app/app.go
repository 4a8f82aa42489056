// Package app wires configuration, storage clients, services and the HTTP
// router into a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/billigi/lending-api/internal/api"
	"github.com/billigi/lending-api/internal/api/handler"
	"github.com/billigi/lending-api/internal/core/service"
	"github.com/billigi/lending-api/internal/infrastructure/db/mongo"
	"github.com/billigi/lending-api/internal/infrastructure/db/redis"
	"github.com/billigi/lending-api/internal/pkg/config"
)

const shutdownTimeout = 10 * time.Second

// App owns the long-lived clients and the Echo server.
type App struct {
	cfg   *config.Config
	log   zerolog.Logger
	mongo *mongodriver.Client
	redis *goredis.Client
	echo  *echo.Echo
}

// New connects to MongoDB and Redis and builds the router. The caller must
// call Close when New succeeds.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, err
	}
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		_ = mongoClient.Disconnect(ctx)
		return nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

	redisClient, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		_ = mongoClient.Disconnect(ctx)
		return nil, err
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	authService := service.NewAuthService(
		mongo.NewUserRepository(db),
		redis.NewSessionStore(redisClient),
		cfg.Session.Secret,
		cfg.Session.TTL,
		log.With().Str("component", "auth").Logger(),
	)
	itemService := service.NewItemService(mongo.NewItemRepository(db), log.With().Str("component", "items").Logger())
	reportService := service.NewReportService(mongo.NewReportRepository(db), log.With().Str("component", "lostfound").Logger())

	e := api.NewRouter(api.Deps{
		Auth:    authService,
		Items:   itemService,
		Reports: reportService,
		HealthChecks: map[string]handler.DependencyCheck{
			"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, readpref.Primary()) },
			"redis":   func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		},
		Cookie: handler.CookieOptions{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
			TTL:    cfg.Session.TTL,
		},
		CORSOrigins: cfg.CORS.Origins,
		Logger:      log.With().Str("component", "http").Logger(),
	})

	return &App{cfg: cfg, log: log, mongo: mongoClient, redis: redisClient, echo: e}, nil
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	addr := ":" + a.cfg.Port
	errCh := make(chan error, 1)

	go func() {
		a.log.Info().Str("addr", addr).Str("env", a.cfg.Env).Msg("http server listening")
		if err := a.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// Close releases the storage clients.
func (a *App) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.redis.Close(); err != nil {
		a.log.Warn().Err(err).Msg("redis close")
	}
	if err := a.mongo.Disconnect(ctx); err != nil {
		a.log.Warn().Err(err).Msg("mongodb disconnect")
	}
}
