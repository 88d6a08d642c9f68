package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/AlibekovAA/users-api/internal/common/config"
	"github.com/AlibekovAA/users-api/internal/common/db"
	"github.com/AlibekovAA/users-api/internal/common/logger"
	userrepo "github.com/AlibekovAA/users-api/internal/user/repository"
	userservice "github.com/AlibekovAA/users-api/internal/user/service"
)

type App struct {
	Log         *logger.Logger
	Config      config.APIConfig
	UserRepo    userrepo.Repository
	UserService *userservice.UserService

	closers []func()
}

// NewApp loads configuration, connects to the configured database and
// ensures the users table exists. ctx bounds the background metrics loops.
func NewApp(ctx context.Context, serviceName string) (*App, error) {
	log, err := initializeLogger(serviceName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.LoadAPIConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return newApp(ctx, log, cfg)
}

func newApp(ctx context.Context, log *logger.Logger, cfg config.APIConfig) (*App, error) {
	app := &App{Log: log, Config: cfg}

	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		pool, err := db.NewPool(ctx, log, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		app.UserRepo = userrepo.NewPgRepository(pool)
		app.closers = append(app.closers, pool.Close)
	case config.DriverSQLite:
		sqlDB, err := db.OpenSQLite(ctx, log, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		app.UserRepo = userrepo.NewSQLiteRepository(sqlDB)
		app.closers = append(app.closers, func() { _ = sqlDB.Close() })
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnsupportedDriver, cfg.DatabaseDriver)
	}

	if err := app.UserRepo.Migrate(ctx); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to migrate users table: %w", err)
	}

	app.UserService = userservice.NewUserService(app.UserRepo, log)
	log.Infof("storage ready: driver=%s", cfg.DatabaseDriver)
	return app, nil
}

// Close releases the database connections.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func initializeLogger(serviceName string) (*logger.Logger, error) {
	return logger.New(os.Getenv("LOG_DIR"), serviceName, os.Getenv("LOG_LEVEL"))
}
