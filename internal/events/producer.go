// internal/events/producer.go
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/barrelhouse/liquorstore-backend/internal/models"
)

const (
	TypeOrderCreated       = "order.created"
	TypeOrderStatusChanged = "order.status_changed"
)

type OrderEvent struct {
	Type       string             `json:"type"`
	OrderID    string             `json:"order_id"`
	UserID     string             `json:"user_id,omitempty"`
	Status     models.OrderStatus `json:"status"`
	Total      float64            `json:"total"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// Producer publishes order lifecycle events. A nil Producer is valid and
// drops everything, so callers never need to check whether Kafka is
// configured.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	if len(brokers) == 0 {
		return nil
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *Producer) PublishOrderEvent(ctx context.Context, eventType string, order *models.Order) error {
	if p == nil {
		return nil
	}

	event := OrderEvent{
		Type:       eventType,
		OrderID:    order.ID.String(),
		UserID:     order.UserID,
		Status:     order.Status,
		Total:      order.Total,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(order.ID.String()),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"type":     eventType,
		"order_id": order.ID,
	}).Debug("order event published")
	return nil
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
