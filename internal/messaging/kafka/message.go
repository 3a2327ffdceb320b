package kafka

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
)

type Message struct {
	Topic         string
	Key           string
	EventType     string
	AggregateType string
	RequestID     string
	Payload       []byte
}

// Writer is the subset of *kafkago.Writer the producer needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Reader is the subset of *kafkago.Reader the consumers need.
type Reader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func HeaderValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
