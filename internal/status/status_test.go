package status_test

import (
	"testing"

	"aristobox/internal/models"
	"aristobox/internal/status"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	cases := []struct {
		from models.OrderStatus
		want []models.OrderStatus
	}{
		{models.OrderStatusPending, []models.OrderStatus{models.OrderStatusConfirmed, models.OrderStatusDelivered}},
		{models.OrderStatusConfirmed, []models.OrderStatus{models.OrderStatusDelivered, models.OrderStatusPending}},
		{models.OrderStatusDelivered, []models.OrderStatus{models.OrderStatusConfirmed}},
		{models.OrderStatusExported, []models.OrderStatus{models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusDelivered}},
	}
	for _, c := range cases {
		t.Run(string(c.from), func(t *testing.T) {
			assert.Equal(t, c.want, status.Next(c.from))
		})
	}
}

func TestNext_EveryStateHasAnExit(t *testing.T) {
	for _, s := range status.All() {
		assert.NotEmpty(t, status.Next(s), s)
	}
}

func TestNext_UnknownIsEmpty(t *testing.T) {
	assert.Empty(t, status.Next("shipped"))
}

func TestNext_ReturnsCopy(t *testing.T) {
	next := status.Next(models.OrderStatusPending)
	next[0] = models.OrderStatusExported
	assert.Equal(t, models.OrderStatusConfirmed, status.Next(models.OrderStatusPending)[0])
}

func TestValid(t *testing.T) {
	for _, s := range status.All() {
		assert.True(t, status.Valid(s), s)
	}
	assert.False(t, status.Valid(""))
	assert.False(t, status.Valid("all"))
	assert.False(t, status.Valid("Pending"))
}

func TestOffered(t *testing.T) {
	assert.True(t, status.Offered(models.OrderStatusPending, models.OrderStatusDelivered))
	assert.False(t, status.Offered(models.OrderStatusDelivered, models.OrderStatusPending))
	assert.False(t, status.Offered(models.OrderStatusPending, models.OrderStatusExported))
}
