// Package status описывает, какие смены статуса заказа предлагать
// пользователю. Это подсказка для интерфейса: хранилище принимает любой
// из четырёх статусов независимо от текущего.
package status

import "aristobox/internal/models"

var flow = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:   {models.OrderStatusConfirmed, models.OrderStatusDelivered},
	models.OrderStatusConfirmed: {models.OrderStatusDelivered, models.OrderStatusPending},
	models.OrderStatusDelivered: {models.OrderStatusConfirmed},
	models.OrderStatusExported:  {models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusDelivered},
}

func All() []models.OrderStatus {
	return []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusDelivered,
		models.OrderStatusExported,
	}
}

func Valid(s models.OrderStatus) bool {
	_, ok := flow[s]
	return ok
}

// Next возвращает предлагаемые следующие статусы; для неизвестного статуса
// пустой список.
func Next(from models.OrderStatus) []models.OrderStatus {
	next := flow[from]
	out := make([]models.OrderStatus, len(next))
	copy(out, next)
	return out
}

func Offered(from, to models.OrderStatus) bool {
	for _, s := range flow[from] {
		if s == to {
			return true
		}
	}
	return false
}
