package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/avc/studyhub-backend/internal/config"
	"github.com/avc/studyhub-backend/internal/scheduler"
	"github.com/avc/studyhub-backend/internal/worker"
)

// App is the application container
type App struct {
	config       *config.Config
	logger       *zap.Logger
	db           *pgxpool.Pool
	router       *chi.Mux
	dispatchPool *worker.Pool
	scheduler    *scheduler.Scheduler
	server       *http.Server
}

// NewApp assembles the application
func NewApp() (*App, error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	deps := initDependencies(cfg, dbPool, logger)

	sched, err := scheduler.New(deps.services.accrual, logger)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to build scheduler: %w", err)
	}

	router := setupRouter(deps, deps.jwtManager, logger)
	server := createServer(cfg.RunAddress, router)

	return &App{
		config:       cfg,
		logger:       logger,
		db:           dbPool,
		router:       router,
		dispatchPool: deps.dispatchPool,
		scheduler:    sched,
		server:       server,
	}, nil
}

// Run starts the application and blocks until shutdown
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.dispatchPool.Start(ctx)
	a.logger.Info("dispatch pool started")

	a.scheduler.Start()

	if err := a.runServer(ctx); err != nil {
		return err
	}

	a.shutdown(cancel)

	return nil
}
