package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"service-food-delivery/internal/domain"
)

var newSyncProducer = sarama.NewSyncProducer

// Producer publishes order events. A nil Producer drops events.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	now      func() time.Time
	newID    func() string
}

// NewProducer creates a new Kafka producer. It returns nil when Kafka is not configured.
func NewProducer(brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return newProducer(p, topic), nil
}

func newProducer(p sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		producer: p,
		topic:    topic,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.NewString() },
	}
}

// OrderCreated publishes an order_created event keyed by order number.
func (p *Producer) OrderCreated(ctx context.Context, o *domain.Order) error {
	if p == nil {
		return nil
	}
	return p.send(ctx, fromOrder(p.newID(), EventOrderCreated, p.now(), o))
}

// OrderStatusChanged publishes an order_status_changed event keyed by order number.
func (p *Producer) OrderStatusChanged(ctx context.Context, o *domain.Order, from domain.OrderStatus) error {
	if p == nil {
		return nil
	}
	dto := fromOrder(p.newID(), EventOrderStatusChanged, p.now(), o)
	dto.FromStatus = string(from)
	return p.send(ctx, dto)
}

func (p *Producer) send(ctx context.Context, dto OrderEventDTO) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", dto.Type, err)
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(dto.OrderNumber),
		Value: sarama.ByteEncoder(b),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(dto.Type)},
			{Key: []byte("event_id"), Value: []byte(dto.EventID)},
		},
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("publish %s %s: %w", dto.Type, dto.OrderNumber, err)
	}
	return nil
}

// Close flushes and closes the producer.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
