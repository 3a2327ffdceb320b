package app

import (
	"context"
	"fmt"

	"rota-console/internal/config"
	"rota-console/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer feeds leave status events into the audit log until ctx is done.
func RunConsumer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("kafka.broker is required")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          cfg.Kafka.LeaveTopic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	log.Info("consuming leave events",
		zap.String("topic", cfg.Kafka.LeaveTopic),
		zap.String("group", cfg.Kafka.ConsumerGroup),
	)
	consumer.ConsumeLeaveStatusChanged(ctx, reader, consumer.NewLogSink(logger), logger)

	log.Info("consumer shutting down")
	return nil
}
