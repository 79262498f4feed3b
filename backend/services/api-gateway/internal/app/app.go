package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	libhttp "swapnet/backend/libs/httpserver"
	"swapnet/backend/libs/prefs"
	libredis "swapnet/backend/libs/redis"
	"swapnet/backend/services/api-gateway/internal/clients"
	"swapnet/backend/services/api-gateway/internal/config"
	httpserver "swapnet/backend/services/api-gateway/internal/http"
	"swapnet/backend/services/api-gateway/internal/http/handlers"
	"swapnet/backend/services/api-gateway/internal/http/middleware"
)

// App wires API gateway dependencies.
type App struct {
	server *libhttp.Server
	redis  *goredis.Client
	logger *zap.Logger
}

// New constructs application graph.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	redisClient, err := libredis.NewRedisClient(ctx, libredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, err
	}

	httpClient := clients.NewDefaultHTTPClient(cfg.HTTPTimeout())
	guarded := func(name string) clients.HTTPDoer {
		return clients.NewBreakerDoer(httpClient, clients.BreakerSettings{
			Name:             name,
			MaxRequests:      cfg.Breaker.MaxRequests,
			Interval:         cfg.Breaker.Interval,
			Timeout:          cfg.Breaker.Timeout,
			FailureThreshold: cfg.Breaker.FailureThreshold,
		}, logger)
	}

	authClient := clients.NewAuthClient(cfg.Services.AuthURL, guarded("auth"))
	stationsClient := clients.NewStationsClient(cfg.Services.StationsURL, guarded("stations"))
	transactionsClient := clients.NewTransactionsClient(cfg.Services.TransactionsURL, guarded("transactions"))
	packsClient := clients.NewPacksClient(cfg.Services.PacksURL, guarded("packs"))

	router := httpserver.NewRouter(httpserver.RouterDeps{
		AuthHandlers:         handlers.NewAuthHandlers(authClient, logger),
		StationsHandlers:     handlers.NewStationsHandlers(stationsClient, logger),
		SlotsHandlers:        handlers.NewSlotsHandlers(stationsClient, logger),
		PacksHandlers:        handlers.NewPacksHandlers(packsClient, logger),
		TransactionsHandlers: handlers.NewTransactionsHandlers(transactionsClient, logger),
		PreferencesHandlers:  handlers.NewPreferencesHandlers(prefs.NewRedisStore(redisClient, cfg.Redis.PrefsTTL), logger),
		HealthHandler:        handlers.NewHealthHandler(),
		MetricsHandler:       promhttp.Handler(),
	}, middleware.AuthMiddleware(cfg.JWT.Secret))

	server := libhttp.New(
		"api gateway",
		cfg.HTTPAddress(),
		router,
		logger,
		middleware.LoggingMiddleware(logger),
		middleware.RecoveryMiddleware(logger),
	)

	return &App{
		server: server,
		redis:  redisClient,
		logger: logger,
	}, nil
}

// Run starts serving HTTP traffic.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases the redis connection.
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
	}
}
