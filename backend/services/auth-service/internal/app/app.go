package app

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	libhttp "swapnet/backend/libs/httpserver"
	appconfig "swapnet/backend/services/auth-service/internal/config"
	"swapnet/backend/services/auth-service/internal/db"
	httpserver "swapnet/backend/services/auth-service/internal/http"
	"swapnet/backend/services/auth-service/internal/http/handlers"
	"swapnet/backend/services/auth-service/internal/password"
	"swapnet/backend/services/auth-service/internal/repository"
	"swapnet/backend/services/auth-service/internal/service"
)

// App wires dependencies for the auth service.
type App struct {
	server *libhttp.Server
	db     *sql.DB
	logger *zap.Logger
}

// New builds application graph.
func New(ctx context.Context, cfg *appconfig.Config, logger *zap.Logger) (*App, error) {
	sqlDB, err := db.NewPostgres(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(sqlDB)
	hasher := password.NewBcryptHasher(cfg.Password.BcryptCost)
	tokenSvc := service.NewTokenService(cfg.JWT.Secret, cfg.JWTExpiration())
	authSvc := service.NewAuthService(userRepo, hasher, tokenSvc, logger)

	routes := httpserver.Routes{
		Register: handlers.NewRegisterHandler(authSvc, logger),
		Login:    handlers.NewLoginHandler(authSvc, logger),
		Health:   handlers.NewHealthHandler(),
	}

	router := httpserver.NewRouter(routes)
	server := libhttp.New("auth service", cfg.HTTPAddress(), router, logger)

	return &App{
		server: server,
		db:     sqlDB,
		logger: logger,
	}, nil
}

// Run starts serving HTTP traffic until context cancellation.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases acquired resources.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
}
