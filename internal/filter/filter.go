// Package filter отбирает заказы по условиям формы и считает сводку.
// Всё в памяти, без состояния: результат зависит только от входа.
package filter

import (
	"net/url"
	"strings"
	"time"

	"aristobox/internal/models"
	"aristobox/internal/status"

	"github.com/shopspring/decimal"
)

const StatusAll = "all"

const dateLayout = "2006-01-02"

// Spec: значения полей фильтра как их ввёл пользователь. Пустое поле
// означает отсутствие условия.
type Spec struct {
	Status    string
	Area      string
	DateFrom  string
	DateTo    string
	MinAmount string
	MaxAmount string

	// Location задаёт границы календарного дня; nil значит time.Local
	Location *time.Location
}

func (s Spec) IsZero() bool {
	return (s.Status == "" || s.Status == StatusAll) &&
		s.Area == "" && s.DateFrom == "" && s.DateTo == "" &&
		s.MinAmount == "" && s.MaxAmount == ""
}

type Result struct {
	Orders     []models.Order
	Total      int
	ByStatus   map[models.OrderStatus]int
	TotalValue decimal.Decimal
}

type bounds struct {
	status   string
	area     string
	from, to *time.Time
	min, max *decimal.Decimal
}

func (s Spec) compile() bounds {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}

	b := bounds{area: strings.ToLower(s.Area)}
	if s.Status != StatusAll {
		b.status = s.Status
	}
	if t, ok := parseDate(s.DateFrom, loc); ok {
		b.from = &t
	}
	if t, ok := parseDate(s.DateTo, loc); ok {
		// конец дня включительно
		end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
		b.to = &end
	}
	b.min = parseAmount(s.MinAmount)
	b.max = parseAmount(s.MaxAmount)
	return b
}

func (b bounds) match(o *models.Order) bool {
	if b.status != "" && string(o.Status) != b.status {
		return false
	}
	if b.area != "" && !strings.Contains(strings.ToLower(o.CustomerInfo.Area), b.area) {
		return false
	}
	if b.from != nil && o.OrderDate.Before(*b.from) {
		return false
	}
	if b.to != nil && o.OrderDate.After(*b.to) {
		return false
	}
	if b.min != nil && o.TotalOrderValue.LessThan(*b.min) {
		return false
	}
	if b.max != nil && o.TotalOrderValue.GreaterThan(*b.max) {
		return false
	}
	return true
}

// Apply возвращает подходящие заказы в исходном порядке и сводку по ним.
func Apply(orders []models.Order, spec Spec) Result {
	b := spec.compile()

	res := Result{
		Orders:     make([]models.Order, 0, len(orders)),
		ByStatus:   make(map[models.OrderStatus]int, 4),
		TotalValue: decimal.Zero,
	}
	for _, s := range status.All() {
		res.ByStatus[s] = 0
	}

	for i := range orders {
		o := &orders[i]
		if !b.match(o) {
			continue
		}
		res.Orders = append(res.Orders, *o)
		res.ByStatus[o.Status]++
		res.TotalValue = res.TotalValue.Add(o.TotalOrderValue)
	}
	res.Total = len(res.Orders)
	return res
}

// ParseQuery собирает Spec из параметров запроса
// (status, area, dateFrom, dateTo, minAmount, maxAmount).
func ParseQuery(q url.Values, loc *time.Location) Spec {
	return Spec{
		Status:    strings.TrimSpace(q.Get("status")),
		Area:      strings.TrimSpace(q.Get("area")),
		DateFrom:  strings.TrimSpace(q.Get("dateFrom")),
		DateTo:    strings.TrimSpace(q.Get("dateTo")),
		MinAmount: strings.TrimSpace(q.Get("minAmount")),
		MaxAmount: strings.TrimSpace(q.Get("maxAmount")),
		Location:  loc,
	}
}

func parseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.In(loc)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), true
	}
	return time.Time{}, false
}

// нечисловое значение означает отсутствие условия, а не ноль
func parseAmount(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
