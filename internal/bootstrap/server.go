package bootstrap

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// RunHTTPServer serves handler until ctx is cancelled, then drains in-flight
// requests for up to shutdownTimeout.
func RunHTTPServer(ctx context.Context, handler http.Handler, cfg ServerConfig, auditLogger AuditLogger) error {
	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return err
	}
	return serve(ctx, ln, handler, cfg, auditLogger)
}

func serve(ctx context.Context, ln net.Listener, handler http.Handler, cfg ServerConfig, auditLogger AuditLogger) error {
	log := zap.L().Named("bootstrap.server")
	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server running", zap.String("addr", ln.Addr().String()))
		auditLogger.Log(ctx, AuditLog{
			Action:  ActionServerStart,
			Message: "Server is accepting requests",
			Meta:    map[string]any{"addr": ln.Addr().String()},
		})
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	auditLogger.Log(context.Background(), AuditLog{
		Action:  ActionServerShutdown,
		Message: "Server is shutting down",
		Meta:    map[string]any{"cause": context.Cause(ctx).Error()},
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
		return err
	}
	log.Info("server exited gracefully")
	return nil
}
