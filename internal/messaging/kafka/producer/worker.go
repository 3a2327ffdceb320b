package producer

import (
	"context"
	"errors"
	"time"

	"rota-console/internal/messaging/kafka"

	"go.uber.org/zap"
)

var ErrQueueFull = errors.New("leave event queue is full")

const writeTimeout = 5 * time.Second

// Run forwards queued events to writer until ctx is done, then flushes
// whatever is still queued.
func (p *LeaveEventPublisher) Run(ctx context.Context, writer kafka.Writer) {
	log := p.logger.Named("worker")
	log.Info("leave event worker started")

	for {
		select {
		case <-ctx.Done():
			p.drain(writer, log)
			log.Info("leave event worker stopped")
			return
		case msg := <-p.queue:
			p.send(context.Background(), writer, msg, log)
		}
	}
}

func (p *LeaveEventPublisher) drain(writer kafka.Writer, log *zap.Logger) {
	for {
		select {
		case msg := <-p.queue:
			p.send(context.Background(), writer, msg, log)
		default:
			return
		}
	}
}

func (p *LeaveEventPublisher) send(ctx context.Context, writer kafka.Writer, msg kafka.Message, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err := publishEvent(ctx, writer, msg); err != nil {
		log.Error("publish leave event failed",
			zap.String("event_type", msg.EventType),
			zap.String("topic", msg.Topic),
			zap.String("key", msg.Key),
			zap.Error(err),
		)
		return
	}

	log.Info("leave event sent",
		zap.String("event_type", msg.EventType),
		zap.String("topic", msg.Topic),
		zap.String("key", msg.Key),
	)
}
