package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"aristobox/internal/models"
	"aristobox/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("publish without deadline")
	}
	f.msgs = append(f.msgs, msgs...)
	return f.err
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestPublishOrderCreated(t *testing.T) {
	w := &fakeWriter{}
	p := &OrderEventProducer{writer: w, timeout: time.Second}

	ev := service.OrderCreatedEvent{
		Key:             12,
		OrderID:         "ORD_1_abcdef",
		SchoolName:      "Delphi Academy",
		TotalOrderValue: decimal.NewFromInt(1510),
		Status:          models.OrderStatusPending,
	}
	require.NoError(t, p.PublishOrderCreated(context.Background(), ev))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "12", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event-type", msg.Headers[0].Key)
	assert.Equal(t, EventOrderCreated, string(msg.Headers[0].Value))

	var env struct {
		Type string         `json:"type"`
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &env))
	assert.Equal(t, EventOrderCreated, env.Type)
	assert.Equal(t, "ORD_1_abcdef", env.Data["order_id"])
	assert.Equal(t, "1510", env.Data["total_order_value"])
}

func TestPublishOrderStatusChanged(t *testing.T) {
	w := &fakeWriter{}
	p := &OrderEventProducer{writer: w, timeout: time.Second}

	err := p.PublishOrderStatusChanged(context.Background(), service.OrderStatusChangedEvent{
		Key: 3, OrderID: "ORD_3", From: models.OrderStatusPending, To: models.OrderStatusDelivered,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "3", string(w.msgs[0].Key))
	assert.Contains(t, string(w.msgs[0].Value), `"to":"delivered"`)
}

func TestPublish_WriterError(t *testing.T) {
	boom := errors.New("leader not available")
	p := &OrderEventProducer{writer: &fakeWriter{err: boom}, timeout: time.Second}
	err := p.PublishOrderCreated(context.Background(), service.OrderCreatedEvent{Key: 1})
	assert.ErrorIs(t, err, boom)
}

func TestClose(t *testing.T) {
	w := &fakeWriter{}
	p := &OrderEventProducer{writer: w, timeout: time.Second}
	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestProducerIsEventBus(t *testing.T) {
	var _ service.EventBus = NewOrderEventProducer([]string{"localhost:9092"}, "aristobox.orders")
}
