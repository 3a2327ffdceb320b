package consumer

import (
	"context"
	"encoding/json"
	"time"

	"rota-console/internal/events"
	"rota-console/internal/messaging/kafka"

	"go.uber.org/zap"
)

// AuditSink receives decoded leave events.
type AuditSink interface {
	RecordLeaveEvent(ctx context.Context, event events.LeaveStatusChangedEvent, requestID string) error
}

// Sink retry backoff, doubled per attempt up to the max.
var (
	sinkRetryBaseDelay = 200 * time.Millisecond
	sinkRetryMaxDelay  = 10 * time.Second
)

// ConsumeLeaveStatusChanged feeds leave events to sink until ctx is done.
// Undecodable messages are committed and skipped. A sink failure holds the
// partition: the same message is retried with backoff and nothing after it
// is fetched or committed until it is recorded.
func ConsumeLeaveStatusChanged(
	ctx context.Context,
	reader kafka.Reader,
	sink AuditSink,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_status")
	log.Info("leave status consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave status consumer stopped")
				return
			}
			log.Error("fetch leave status message failed", zap.Error(err))
			continue
		}

		var event events.LeaveStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave status event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if !recordWithRetry(ctx, sink, event, kafka.HeaderValue(msg, "request_id"), log) {
			log.Info("leave status consumer stopped before event was recorded",
				zap.Int64("offset", msg.Offset),
			)
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave status message failed", zap.Error(err))
			continue
		}
	}
}

// recordWithRetry returns false only when ctx ends first.
func recordWithRetry(
	ctx context.Context,
	sink AuditSink,
	event events.LeaveStatusChangedEvent,
	requestID string,
	log *zap.Logger,
) bool {
	delay := sinkRetryBaseDelay
	for attempt := 1; ; attempt++ {
		err := sink.RecordLeaveEvent(ctx, event, requestID)
		if err == nil {
			return true
		}
		log.Error("record leave event failed",
			zap.Int("leave_request_id", event.LeaveRequestID),
			zap.String("event_type", event.EventType),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
		delay *= 2
		if delay > sinkRetryMaxDelay {
			delay = sinkRetryMaxDelay
		}
	}
}

// LogSink writes every leave event to the structured log.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger.Named("audit.leave")}
}

func (s *LogSink) RecordLeaveEvent(_ context.Context, event events.LeaveStatusChangedEvent, requestID string) error {
	fields := []zap.Field{
		zap.String("event_type", event.EventType),
		zap.Int("leave_request_id", event.LeaveRequestID),
		zap.Int("employee_id", event.EmployeeID),
		zap.String("status", event.Status),
		zap.String("actor_kind", event.ActorKind),
		zap.String("actor_username", event.ActorUsername),
		zap.Time("occurred_at", event.OccurredAt),
	}
	if event.FromStatus != "" {
		fields = append(fields, zap.String("from_status", event.FromStatus))
	}
	if event.ActorEmployeeID != nil {
		fields = append(fields, zap.Int("actor_employee_id", *event.ActorEmployeeID))
	}
	if requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	s.logger.Info("leave event", fields...)
	return nil
}
