package http

import (
	"aristobox/internal/filter"
	"aristobox/internal/models"
	"aristobox/internal/service"

	"github.com/shopspring/decimal"
)

// BaseError универсальный корневой формат ошибки
// Code: машинно-ориентированный код (snake_case)
// Message: краткое человеко-читаемое описание
// Fields: для валидационных ошибок (имя поля + текст)
type BaseError struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Details string               `json:"details,omitempty"`
	Fields  []service.FieldError `json:"fields,omitempty"`
}

func NewValidationError(msg string, fields []service.FieldError) BaseError {
	return BaseError{Code: "validation_error", Message: msg, Fields: fields}
}
func NewConflictError(msg string) BaseError {
	return BaseError{Code: "conflict", Message: msg}
}
func NewNotFoundError(msg string) BaseError {
	return BaseError{Code: "not_found", Message: msg}
}
func NewUnprocessableError(msg string) BaseError {
	return BaseError{Code: "unprocessable", Message: msg}
}
func NewInternalError(details string) BaseError {
	return BaseError{Code: "internal_error", Message: "internal server error", Details: details}
}

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

type OrderDetailResponse struct {
	*models.Order
	NextStatuses []models.OrderStatus `json:"nextStatuses"`
}

type OrderListResponse struct {
	Orders     []models.Order             `json:"orders"`
	Total      int                        `json:"total"`
	ByStatus   map[models.OrderStatus]int `json:"byStatus"`
	TotalValue decimal.Decimal            `json:"totalValue"`
}

func newOrderListResponse(r filter.Result) OrderListResponse {
	orders := r.Orders
	if orders == nil {
		orders = []models.Order{}
	}
	return OrderListResponse{
		Orders:     orders,
		Total:      r.Total,
		ByStatus:   r.ByStatus,
		TotalValue: r.TotalValue,
	}
}
