package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/stellarcredit/credit-service/internal/domain/event"
)

// LogPublisher implements port.EventPublisher without a broker: events are
// logged and dropped. Used when KAFKA_BROKERS is unset, typically alongside
// the memory backend in development.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a broker-less publisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the events that would have been sent.
func (p *LogPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}

		p.logger.InfoContext(ctx, "domain event (no broker configured)",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"payload_size", len(payload),
		)
	}
	return nil
}
