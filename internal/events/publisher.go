package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/md-rashed-zaman/bookinglite/libs/kafkax"
)

const (
	AppointmentCreated   = "booking.appointment.created.v1"
	AppointmentCompleted = "booking.appointment.completed.v1"
)

// Publisher emits appointment lifecycle events to Kafka on a best-effort
// basis: failures are logged and never surfaced to the request that
// triggered them. A Publisher built without brokers is a no-op.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewPublisher(brokers string, logger *slog.Logger) *Publisher {
	list := kafkax.SplitBrokers(brokers)
	if len(list) == 0 {
		logger.Info("event publishing disabled (no kafka brokers configured)")
		return &Publisher{logger: logger}
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(list...),
			Balancer: &kafka.Hash{},
		},
		logger: logger,
	}
}

func (p *Publisher) Publish(ctx context.Context, eventType, key string, payload any) {
	if p.writer == nil {
		return
	}

	value, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("event payload marshal failed", "event_type", eventType, "err", err)
		return
	}

	msg := kafka.Message{
		Topic: eventType,
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(uuid.NewString())},
			{Key: "event_type", Value: []byte(eventType)},
		},
	}
	msg.Headers = kafkax.InjectTraceHeaders(ctx, msg.Headers)

	// Detach from the request: the write happens off the request goroutine
	// so a broker outage never adds latency to the triggering request.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	go func() {
		defer cancel()
		if err := p.writer.WriteMessages(writeCtx, msg); err != nil {
			p.logger.Error("event publish failed", "event_type", eventType, "key", key, "err", err)
		}
	}()
}

func (p *Publisher) Close() {
	if p.writer != nil {
		_ = p.writer.Close()
	}
}
