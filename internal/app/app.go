package app

import (
	"context"
	"sync"

	"rota-console/internal/config"
	"rota-console/internal/events"
	"rota-console/internal/gateway"
	"rota-console/internal/messaging/kafka/producer"
	"rota-console/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const connectRetries = 5

type dependencies struct {
	gateway   *gateway.Client
	redis     *redis.Client
	publisher events.Publisher
}

// BuildApp connects the optional infrastructure, registers every module on
// router and starts the leave event publisher. The returned cleanup blocks
// until queued events are flushed; call it after ctx is cancelled.
func BuildApp(ctx context.Context, router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	log := logger.Named("app")
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	gw, err := gateway.NewClient(gateway.Config{
		BaseURL: cfg.Gateway.BaseURL,
		Timeout: cfg.Gateway.Timeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	deps := dependencies{gateway: gw, publisher: events.NopPublisher{}}

	if cfg.Redis.Enabled {
		rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, connectRetries)
		if err != nil {
			return nil, err
		}
		deps.redis = rdb
		closers = append(closers, func() { _ = rdb.Close() })
	} else {
		log.Info("redis disabled: no logout denylist or idempotency replay")
	}

	if cfg.Kafka.Broker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, connectRetries)
		if err != nil {
			cleanup()
			return nil, err
		}
		publisher := producer.NewLeaveEventPublisher(cfg.Kafka.LeaveTopic, 0, logger)
		deps.publisher = publisher

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			publisher.Run(ctx, writer)
		}()
		closers = append(closers, func() {
			wg.Wait()
			_ = writer.Close()
		})
	} else {
		log.Info("kafka broker not configured: leave events are not published")
	}

	if err := registerModules(router, cfg, logger, deps); err != nil {
		cleanup()
		return nil, err
	}
	return cleanup, nil
}
