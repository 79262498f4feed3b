package app

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	libhttp "swapnet/backend/libs/httpserver"
	"swapnet/backend/services/station-service/internal/config"
	"swapnet/backend/services/station-service/internal/db"
	httpserver "swapnet/backend/services/station-service/internal/http"
	"swapnet/backend/services/station-service/internal/http/handlers"
	"swapnet/backend/services/station-service/internal/repository"
	"swapnet/backend/services/station-service/internal/service"
)

// App wires station-service dependencies.
type App struct {
	server *libhttp.Server
	db     *sql.DB
	logger *zap.Logger
}

// New constructs the application graph.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	sqlDB, err := db.NewPostgres(ctx, cfg.Database.DSN, cfg.Database.MaxOpenConns)
	if err != nil {
		return nil, err
	}

	stationRepo := repository.NewStationRepository(sqlDB)
	stationService := service.NewStationService(stationRepo, logger)
	stationsHandler := handlers.NewStationsHandler(stationService, logger)

	routes := httpserver.Routes{
		Stations: stationsHandler.List,
		Station:  stationsHandler.Get,
		Pins:     stationsHandler.Pins,
		Health:   handlers.NewHealthHandler(),
	}

	router := httpserver.NewRouter(routes)
	server := libhttp.New("station service", cfg.HTTPAddress(), router, logger)

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
