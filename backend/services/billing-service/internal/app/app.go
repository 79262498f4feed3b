package app

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	libhttp "swapnet/backend/libs/httpserver"
	"swapnet/backend/services/billing-service/internal/config"
	"swapnet/backend/services/billing-service/internal/db"
	httpserver "swapnet/backend/services/billing-service/internal/http"
	"swapnet/backend/services/billing-service/internal/http/handlers"
	"swapnet/backend/services/billing-service/internal/repository"
	"swapnet/backend/services/billing-service/internal/service"
)

// App wires billing service dependencies.
type App struct {
	server *libhttp.Server
	db     *sql.DB
	logger *zap.Logger
}

// New constructs application graph.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	sqlDB, err := db.NewPostgres(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	txRepo := repository.NewTransactionRepository(sqlDB)
	packRepo := repository.NewPackRepository(sqlDB)
	billingService := service.NewBillingService(txRepo, packRepo, cfg.Pricing.SwapPrice, logger)

	routes := httpserver.Routes{
		SwapRecorded:   handlers.NewSwapRecordedHandler(billingService, logger),
		TransactionsMe: handlers.NewTransactionsMeHandler(billingService, logger),
		Packs:          handlers.NewPacksHandler(billingService, logger),
		Health:         handlers.NewHealthHandler(),
	}

	router := httpserver.NewRouter(routes)
	server := libhttp.New("billing service", cfg.HTTPAddress(), router, logger)

	return &App{
		server: server,
		db:     sqlDB,
		logger: logger,
	}, nil
}

// Run starts HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
}
