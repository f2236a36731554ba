package service

import (
	"context"
	"io"

	"aristobox/internal/filter"
	"aristobox/internal/livequery"
	"aristobox/internal/models"
)

type CustomerInput struct {
	SchoolName    string `json:"schoolName" validate:"required,min=2"`
	ContactPerson string `json:"contactPerson" validate:"required,min=2"`
	Phone         string `json:"phone" validate:"required,min=10,max=15"`
	Area          string `json:"area" validate:"required,min=2"`
	StudentCount  *int   `json:"studentCount,omitempty" validate:"omitempty,min=1"`
}

type CreateOrderItem struct {
	KitID    string `json:"kitId"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

type CreateOrderInput struct {
	Customer  CustomerInput     `json:"customer"`
	Items     []CreateOrderItem `json:"items"`
	Signature *string           `json:"signature,omitempty"`
	Notes     *string           `json:"notes,omitempty"`
}

type ExportResult struct {
	Filename string
	Rows     int
	Orders   int
}

type OrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error)
	GetOrder(ctx context.Context, key uint) (*models.Order, error)
	UpdateStatus(ctx context.Context, key uint, status models.OrderStatus) (*models.Order, error)
	NextStatuses(ctx context.Context, key uint) ([]models.OrderStatus, error)
	ListOrders(ctx context.Context, spec filter.Spec) (filter.Result, error)
	ListKits(ctx context.Context) ([]models.Kit, error)
	ExportCSV(ctx context.Context, spec filter.Spec, w io.Writer) (ExportResult, error)
	WatchOrders(ctx context.Context) *livequery.Live[[]models.Order]
}
