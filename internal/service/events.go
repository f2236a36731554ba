package service

import (
	"context"
	"time"

	"aristobox/internal/models"

	"github.com/shopspring/decimal"
)

type OrderItemEvent struct {
	KitID       string          `json:"kit_id"`
	KitName     string          `json:"kit_name"`
	Quantity    int             `json:"quantity"`
	PricePerKit decimal.Decimal `json:"price_per_kit"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type OrderCreatedEvent struct {
	Key             uint               `json:"key"`
	OrderID         string             `json:"order_id"`
	SchoolName      string             `json:"school_name"`
	Area            string             `json:"area"`
	Items           []OrderItemEvent   `json:"items"`
	TotalOrderValue decimal.Decimal    `json:"total_order_value"`
	Status          models.OrderStatus `json:"status"`
	OrderDate       time.Time          `json:"order_date"`
}

type OrderStatusChangedEvent struct {
	Key       uint               `json:"key"`
	OrderID   string             `json:"order_id"`
	From      models.OrderStatus `json:"from"`
	To        models.OrderStatus `json:"to"`
	ChangedAt time.Time          `json:"changed_at"`
}

type EventBus interface {
	PublishOrderCreated(ctx context.Context, e OrderCreatedEvent) error
	PublishOrderStatusChanged(ctx context.Context, e OrderStatusChangedEvent) error
}

func newOrderCreatedEvent(o *models.Order) OrderCreatedEvent {
	items := make([]OrderItemEvent, 0, len(o.SelectedKits))
	for _, it := range o.SelectedKits {
		items = append(items, OrderItemEvent{
			KitID:       it.KitID,
			KitName:     it.KitName,
			Quantity:    it.Quantity,
			PricePerKit: it.PricePerKit,
			TotalAmount: it.TotalAmount,
		})
	}
	return OrderCreatedEvent{
		Key:             o.ID,
		OrderID:         o.OrderID,
		SchoolName:      o.CustomerInfo.SchoolName,
		Area:            o.CustomerInfo.Area,
		Items:           items,
		TotalOrderValue: o.TotalOrderValue,
		Status:          o.Status,
		OrderDate:       o.OrderDate,
	}
}
