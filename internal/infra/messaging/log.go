package messaging

import (
	"context"
	"log/slog"
)

// LogPublisher writes messages to the application log instead of a broker.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(_ context.Context, subject, key string, payload []byte) error {
	slog.Info("message published",
		slog.String("subject", subject),
		slog.String("key", key),
		slog.Int("bytes", len(payload)),
		slog.String("payload", string(payload)),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
