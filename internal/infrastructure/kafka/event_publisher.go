package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/credora/credit-analysis-service/internal/domain/event"
	"github.com/credora/credit-analysis-service/pkg/kafka"
)

// EventPublisher implements port.EventPublisher on top of the shared Kafka
// producer. All analysis events go to a single topic, keyed by aggregate ID
// so consumers see per-record ordering.
type EventPublisher struct {
	producer *kafka.Producer
	topic    string
	logger   *slog.Logger
}

// NewEventPublisher creates a Kafka-backed domain event publisher.
func NewEventPublisher(producer *kafka.Producer, topic string, logger *slog.Logger) *EventPublisher {
	return &EventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Publish serializes and sends the given domain events.
func (p *EventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_id":   evt.EventID(),
				"event_type": evt.EventType(),
			},
		})
	}

	if err := p.producer.Publish(ctx, p.topic, messages...); err != nil {
		return fmt.Errorf("publish events: %w", err)
	}

	for _, evt := range events {
		p.logger.Debug("published domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
		)
	}
	return nil
}
