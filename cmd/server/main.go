package main

import (
	"ItemKeeper/internal/app"
	"ItemKeeper/internal/config"
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg := config.NewConfig()

	// создаём регистратор zap с уровнем из конфигурации
	logger, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sugar.Infow("Config",
		"Port", cfg.Port,
		"Collection", cfg.Collection,
		"ShutdownTimeout", cfg.ShutdownTimeout,
		"LogLevel", cfg.LogLevel,
	)

	a, err := app.New(ctx, cfg, sugar)
	if err != nil {
		sugar.Fatalw("failed to initialize application", "error", err)
	}

	if err := a.Run(ctx); err != nil {
		sugar.Errorw("Server failed", "error", err)
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
}
