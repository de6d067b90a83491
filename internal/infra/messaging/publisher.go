package messaging

import (
	"context"
	"fmt"

	"table-booking/internal/pkg/config"
)

// Publisher delivers one message to a subject (NATS) or topic (Kafka).
// key groups related messages: a Kafka partition key, a NATS message id.
type Publisher interface {
	Publish(ctx context.Context, subject, key string, payload []byte) error
	Close() error
}

func NewPublisher(cfg config.MessagingConfig) (Publisher, error) {
	switch cfg.Driver {
	case config.MessagingDriverNATS:
		return NewNATSPublisher(cfg.NATSURL)
	case config.MessagingDriverKafka:
		return NewKafkaPublisher(cfg.KafkaBrokers), nil
	case config.MessagingDriverLog, "":
		return NewLogPublisher(), nil
	default:
		return nil, fmt.Errorf("unknown messaging driver %q", cfg.Driver)
	}
}
