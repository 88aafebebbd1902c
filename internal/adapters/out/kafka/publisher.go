// Package kafka publishes order lifecycle events to a Kafka topic.
// Events are emitted after the storing transaction commits; consumers such
// as notification services are eventually consistent with the database.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"foodorder/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// statusChangedMessage is the wire format of an order status change.
type statusChangedMessage struct {
	OrderID    string    `json:"order_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	DriverID   string    `json:"driver_id,omitempty"`
	ActorRole  string    `json:"actor_role"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher implements ports.OrderEventPublisher on a kafka.Writer.
// Messages are keyed by order id so all events of one order land in the
// same partition and keep their relative ordering.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher writing to the given broker and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
	}
}

// PublishStatusChanged emits one status change event.
func (p *Publisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	msg := statusChangedMessage{
		OrderID:    event.OrderID.String(),
		From:       event.From.String(),
		To:         event.To.String(),
		ActorRole:  event.ActorRole.String(),
		OccurredAt: event.OccurredAt,
	}
	if event.DriverID != nil {
		msg.DriverID = event.DriverID.String()
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.OrderID),
		Value: payload,
	})
}

// Close flushes pending messages and releases the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
