package producer

import (
	"context"
	"encoding/json"
	"strconv"

	"rota-console/internal/events"
	"rota-console/internal/messaging/kafka"
	"rota-console/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const defaultQueueSize = 256

func publishEvent(ctx context.Context, writer kafka.Writer, event kafka.Message) error {
	msg := kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.Key),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
			{Key: "request_id", Value: []byte(event.RequestID)},
		},
	}

	return writer.WriteMessages(ctx, msg)
}

// LeaveEventPublisher queues leave events in memory; Run drains the queue
// into Kafka so request handlers never wait on the broker.
type LeaveEventPublisher struct {
	topic  string
	queue  chan kafka.Message
	logger *zap.Logger
}

func NewLeaveEventPublisher(topic string, queueSize int, logger ...*zap.Logger) *LeaveEventPublisher {
	if topic == "" {
		topic = events.LeaveStatusChangedTopic
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	l := zap.L().Named("kafka.producer.leave")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.producer.leave")
	}
	return &LeaveEventPublisher{
		topic:  topic,
		queue:  make(chan kafka.Message, queueSize),
		logger: l,
	}
}

func (p *LeaveEventPublisher) PublishLeaveStatusChanged(ctx context.Context, event events.LeaveStatusChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Topic:         p.topic,
		Key:           strconv.Itoa(event.LeaveRequestID),
		EventType:     event.EventType,
		AggregateType: "leave_request",
		RequestID:     contextutil.GetRequestID(ctx),
		Payload:       payload,
	}

	select {
	case p.queue <- msg:
		return nil
	default:
		p.logger.Warn("leave event queue full, dropping event",
			zap.String("event_type", event.EventType),
			zap.Int("leave_request_id", event.LeaveRequestID),
		)
		return ErrQueueFull
	}
}
