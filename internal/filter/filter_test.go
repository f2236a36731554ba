package filter_test

import (
	"net/url"
	"testing"
	"time"

	"aristobox/internal/filter"
	"aristobox/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ord(id, area string, st models.OrderStatus, total string, at time.Time) models.Order {
	return models.Order{
		OrderID:         id,
		CustomerInfo:    models.CustomerInfo{SchoolName: "School " + id, Area: area},
		TotalOrderValue: decimal.RequireFromString(total),
		OrderDate:       at,
		Status:          st,
	}
}

func ids(orders []models.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.OrderID)
	}
	return out
}

func sample() []models.Order {
	loc := time.UTC
	return []models.Order{
		ord("A", "Westlands", models.OrderStatusDelivered, "1510", time.Date(2025, 3, 12, 23, 59, 59, 0, loc)),
		ord("B", "Karen", models.OrderStatusConfirmed, "960", time.Date(2025, 3, 11, 8, 0, 0, 0, loc)),
		ord("C", "westlands east", models.OrderStatusPending, "320", time.Date(2025, 3, 10, 0, 0, 0, 0, loc)),
		ord("D", "Kilimani", models.OrderStatusExported, "2000", time.Date(2025, 3, 9, 12, 0, 0, 0, loc)),
	}
}

func TestApply_EmptySpecReturnsAll(t *testing.T) {
	orders := sample()
	for _, spec := range []filter.Spec{{}, {Status: filter.StatusAll}} {
		res := filter.Apply(orders, spec)
		assert.Equal(t, []string{"A", "B", "C", "D"}, ids(res.Orders))
		assert.Equal(t, 4, res.Total)
		assert.True(t, res.TotalValue.Equal(decimal.NewFromInt(4790)), res.TotalValue.String())
	}
}

func TestApply_ByStatusHasAllKeys(t *testing.T) {
	res := filter.Apply(nil, filter.Spec{})
	assert.Equal(t, 0, res.Total)
	assert.Len(t, res.ByStatus, 4)
	for _, n := range res.ByStatus {
		assert.Zero(t, n)
	}
	assert.True(t, res.TotalValue.IsZero())
}

func TestApply_Status(t *testing.T) {
	res := filter.Apply(sample(), filter.Spec{Status: "confirmed", Location: time.UTC})
	assert.Equal(t, []string{"B"}, ids(res.Orders))
	assert.Equal(t, 1, res.ByStatus[models.OrderStatusConfirmed])
	assert.Equal(t, 0, res.ByStatus[models.OrderStatusDelivered])
}

func TestApply_StatusMismatchBeatsAmountMatch(t *testing.T) {
	res := filter.Apply(sample(), filter.Spec{Status: "confirmed", MinAmount: "1000", Location: time.UTC})
	assert.Empty(t, res.Orders)
	assert.Equal(t, 0, res.Total)
}

func TestApply_AreaCaseInsensitiveSubstring(t *testing.T) {
	res := filter.Apply(sample(), filter.Spec{Area: "WESTLANDS", Location: time.UTC})
	assert.Equal(t, []string{"A", "C"}, ids(res.Orders))
}

func TestApply_DateRangeInclusive(t *testing.T) {
	res := filter.Apply(sample(), filter.Spec{DateFrom: "2025-03-10", DateTo: "2025-03-12", Location: time.UTC})
	// A в 23:59:59 последнего дня входит, D раньше начала
	assert.Equal(t, []string{"A", "B", "C"}, ids(res.Orders))
}

func TestApply_DateToEndOfDay(t *testing.T) {
	loc := time.UTC
	orders := []models.Order{
		ord("edge", "x", models.OrderStatusPending, "1", time.Date(2025, 3, 12, 23, 59, 59, int(999*time.Millisecond), loc)),
		ord("next", "x", models.OrderStatusPending, "1", time.Date(2025, 3, 13, 0, 0, 0, 0, loc)),
	}
	res := filter.Apply(orders, filter.Spec{DateTo: "2025-03-12", Location: loc})
	assert.Equal(t, []string{"edge"}, ids(res.Orders))
}

func TestApply_DayBoundariesFollowLocation(t *testing.T) {
	nairobi := time.FixedZone("EAT", 3*60*60)
	// 22:30 UTC 11 марта это уже 12 марта в Найроби
	orders := []models.Order{
		ord("late", "x", models.OrderStatusPending, "1", time.Date(2025, 3, 11, 22, 30, 0, 0, time.UTC)),
	}
	assert.Len(t, filter.Apply(orders, filter.Spec{DateFrom: "2025-03-12", Location: nairobi}).Orders, 1)
	assert.Empty(t, filter.Apply(orders, filter.Spec{DateFrom: "2025-03-12", Location: time.UTC}).Orders)
}

func TestApply_AmountBounds(t *testing.T) {
	res := filter.Apply(sample(), filter.Spec{MinAmount: "960", MaxAmount: "1510", Location: time.UTC})
	assert.Equal(t, []string{"A", "B"}, ids(res.Orders))
	assert.True(t, res.TotalValue.Equal(decimal.NewFromInt(2470)))
}

func TestApply_UnparsableValuesAreNoConstraint(t *testing.T) {
	spec := filter.Spec{MinAmount: "abc", MaxAmount: "", DateFrom: "yesterday", DateTo: "13/03/2025", Location: time.UTC}
	res := filter.Apply(sample(), spec)
	assert.Len(t, res.Orders, 4)
}

func TestApply_UnknownStatusMatchesNothing(t *testing.T) {
	res := filter.Apply(sample(), filter.Spec{Status: "shipped"})
	assert.Empty(t, res.Orders)
}

func TestApply_PreservesInputOrder(t *testing.T) {
	orders := sample()
	orders[0], orders[3] = orders[3], orders[0]
	res := filter.Apply(orders, filter.Spec{})
	assert.Equal(t, []string{"D", "B", "C", "A"}, ids(res.Orders))
}

func TestApply_RFC3339Date(t *testing.T) {
	res := filter.Apply(sample(), filter.Spec{DateFrom: "2025-03-11T15:00:00Z", Location: time.UTC})
	// время отбрасывается, граница это начало дня
	assert.Equal(t, []string{"A", "B"}, ids(res.Orders))
}

func TestParseQuery(t *testing.T) {
	q, err := url.ParseQuery("status=pending&area=+Karen+&dateFrom=2025-01-01&dateTo=2025-01-31&minAmount=10&maxAmount=99.5")
	require.NoError(t, err)

	spec := filter.ParseQuery(q, time.UTC)
	assert.Equal(t, filter.Spec{
		Status:    "pending",
		Area:      "Karen",
		DateFrom:  "2025-01-01",
		DateTo:    "2025-01-31",
		MinAmount: "10",
		MaxAmount: "99.5",
		Location:  time.UTC,
	}, spec)
	assert.False(t, spec.IsZero())
	assert.True(t, filter.ParseQuery(url.Values{"status": {"all"}}, nil).IsZero())
}
