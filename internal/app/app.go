// Package app собирает сервер ItemKeeper: хранилище, сервис, роутер и http.Server.
package app

import (
	"ItemKeeper/internal/config"
	"ItemKeeper/internal/handlers"
	"ItemKeeper/internal/repo"
	"ItemKeeper/internal/service"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout  = 5 * time.Second
	startupPingTimeout = 3 * time.Second
	idleTimeout        = 60 * time.Second
)

type App struct {
	cfg    *config.Config
	logger *zap.SugaredLogger
	store  *repo.Store
	server *http.Server
}

// NewLogger создаёт логгер с уровнем из конфигурации. Неизвестный уровень — info.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.DisableStacktrace = true
	return zcfg.Build()
}

// New открывает хранилище и собирает сервер. Недоступность хранилища не мешает
// старту: запросы к нему будут отвечать 500, пока связь не появится.
func New(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger) (*App, error) {
	store, err := repo.Open(ctx, cfg.DatabaseDSN, cfg.Collection)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, startupPingTimeout)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		logger.Errorw("Store is unreachable", "backend", store.Backend(), "error", err)
	} else {
		logger.Infow("Connected to store", "backend", store.Backend())
	}

	itemService := service.NewItemService(store.Items(), logger)
	h := handlers.NewHandler(itemService, store.Ping, logger)

	return &App{
		cfg:    cfg,
		logger: logger,
		store:  store,
		server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           h.Router,
			ReadHeaderTimeout: readHeaderTimeout,
			IdleTimeout:       idleTimeout,
		},
	}, nil
}

// Handler — корневой http.Handler приложения.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run обслуживает запросы до отмены ctx, затем останавливает сервер
// в пределах ShutdownTimeout и закрывает хранилище.
func (a *App) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Infow("Starting server", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Infow("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()

		err := a.server.Shutdown(shutdownCtx)
		if cerr := a.store.Close(shutdownCtx); cerr != nil {
			a.logger.Errorw("Failed to close store", "error", cerr)
		}
		return err
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.logger.Infow("Server stopped")
	return nil
}
