package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"aristobox/internal/models"
)

const (
	ContentType = "text/csv"

	dateLayout     = "2006-01-02 15:04"
	filenameLayout = "2006-01-02"
)

var Header = []string{
	"Order ID", "School Name", "Contact Person", "Phone", "Area",
	"Kit Name", "Quantity", "Price Per Kit", "Total Amount",
	"Order Date", "Status",
}

// Filename: имя файла выгрузки за дату now: aristobox-orders-YYYY-MM-DD.csv.
func Filename(now time.Time) string {
	return "aristobox-orders-" + now.Format(filenameLayout) + ".csv"
}

// Rows разворачивает заказы в строки: по одной на позицию, поля заказа
// повторяются в каждой строке.
func Rows(orders []models.Order, loc *time.Location) [][]string {
	if loc == nil {
		loc = time.Local
	}
	var rows [][]string
	for i := range orders {
		o := &orders[i]
		date := o.OrderDate.In(loc).Format(dateLayout)
		for _, it := range o.SelectedKits {
			rows = append(rows, []string{
				o.OrderID,
				o.CustomerInfo.SchoolName,
				o.CustomerInfo.ContactPerson,
				o.CustomerInfo.Phone,
				o.CustomerInfo.Area,
				it.KitName,
				strconv.Itoa(it.Quantity),
				it.PricePerKit.String(),
				it.TotalAmount.String(),
				date,
				string(o.Status),
			})
		}
	}
	return rows
}

// Build собирает выгрузку целиком в памяти. Поля с запятой, кавычкой или
// переводом строки берутся в кавычки (RFC 4180), остальные пишутся как есть.
// Строки разделены \n, после последней перевода строки нет.
func Build(orders []models.Order, loc *time.Location) ([]byte, int, error) {
	rows := Rows(orders, loc)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Header); err != nil {
		return nil, 0, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, 0, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), len(rows), nil
}

// WriteCSV пишет выгрузку в w. До w ничего не доходит, если сборка упала.
func WriteCSV(w io.Writer, orders []models.Order, loc *time.Location) (int, error) {
	data, n, err := Build(orders, loc)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(data); err != nil {
		return 0, err
	}
	return n, nil
}
