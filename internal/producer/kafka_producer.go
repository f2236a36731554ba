package producer

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"aristobox/internal/service"

	"github.com/segmentio/kafka-go"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventProducer публикует события заказов в Kafka. Ключ сообщения:
// ключ заказа, так что события одного заказа попадают в одну партицию.
type OrderEventProducer struct {
	writer  messageWriter
	timeout time.Duration
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	return &OrderEventProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		timeout: 5 * time.Second,
	}
}

type envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

func (p *OrderEventProducer) PublishOrderCreated(ctx context.Context, e service.OrderCreatedEvent) error {
	return p.publish(ctx, e.Key, EventOrderCreated, e)
}

func (p *OrderEventProducer) PublishOrderStatusChanged(ctx context.Context, e service.OrderStatusChangedEvent) error {
	return p.publish(ctx, e.Key, EventOrderStatusChanged, e)
}

func (p *OrderEventProducer) publish(ctx context.Context, key uint, typ string, data any) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	value, err := json.Marshal(envelope{Type: typ, Data: data})
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(strconv.FormatUint(uint64(key), 10)),
		Value:   value,
		Headers: []kafka.Header{{Key: "event-type", Value: []byte(typ)}},
	})
}

func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}
