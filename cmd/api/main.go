package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"rota-console/internal/app"
	"rota-console/internal/bootstrap"
	"rota-console/internal/config"
	"rota-console/internal/shared/apperror"

	"github.com/gin-gonic/gin"
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

	apperror.Init()
	if cfg.Log.Format != "console" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// build dependency + routes
	cleanup, err := app.BuildApp(ctx, r, cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	err = bootstrap.RunHTTPServer(ctx, bootstrap.WithCORS(r, cfg.Server.AllowedOrigins), bootstrap.ServerConfig{
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}, bootstrap.NewStdoutAuditLogger(logger))
	stop()
	cleanup()
	if err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}
