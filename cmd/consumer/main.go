package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"rota-console/internal/app"
	"rota-console/internal/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("ROTA_CONFIG"))
	if err != nil {
		panic(err)
	}
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunConsumer(ctx, cfg, logger); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
