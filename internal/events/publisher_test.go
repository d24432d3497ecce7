package events

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublishWithoutBrokersIsNoop(t *testing.T) {
	p := NewPublisher("", discardLogger())
	defer p.Close()

	// Must not panic or block.
	p.Publish(context.Background(), AppointmentCreated, "k", map[string]string{"x": "y"})
}

func TestPublishDoesNotBlockCaller(t *testing.T) {
	// Unreachable broker: the write itself would take the full timeout.
	p := NewPublisher("127.0.0.1:1", discardLogger())
	defer p.Close()

	start := time.Now()
	p.Publish(context.Background(), AppointmentCreated, "k", map[string]string{"x": "y"})
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("Publish blocked the caller for %v", elapsed)
	}
}
