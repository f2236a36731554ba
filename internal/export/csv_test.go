package export_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"aristobox/internal/export"
	"aristobox/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func delphi() models.Order {
	return models.Order{
		OrderID: "ORD_1741600000000_a1b2c3",
		CustomerInfo: models.CustomerInfo{
			SchoolName:    "Delphi Academy",
			ContactPerson: "Mrs Kamau",
			Phone:         "0712345678",
			Area:          "Westlands",
		},
		SelectedKits: []models.OrderItem{
			{KitID: "mathultra_002", KitName: "MathUltra", Quantity: 2, PricePerKit: decimal.NewFromInt(480), TotalAmount: decimal.NewFromInt(960)},
			{KitID: "chemdraw_004", KitName: "ChemDraw", Quantity: 1, PricePerKit: decimal.NewFromInt(550), TotalAmount: decimal.NewFromInt(550)},
		},
		TotalOrderValue: decimal.NewFromInt(1510),
		OrderDate:       time.Date(2025, 3, 10, 9, 5, 0, 0, time.UTC),
		Status:          models.OrderStatusPending,
	}
}

func TestBuild_HeaderAndRowPerItem(t *testing.T) {
	data, n, err := export.Build([]models.Order{delphi()}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Order ID,School Name,Contact Person,Phone,Area,Kit Name,Quantity,Price Per Kit,Total Amount,Order Date,Status", lines[0])
	assert.Equal(t, "ORD_1741600000000_a1b2c3,Delphi Academy,Mrs Kamau,0712345678,Westlands,MathUltra,2,480,960,2025-03-10 09:05,pending", lines[1])
	assert.Equal(t, "ORD_1741600000000_a1b2c3,Delphi Academy,Mrs Kamau,0712345678,Westlands,ChemDraw,1,550,550,2025-03-10 09:05,pending", lines[2])
}

func TestBuild_NoTrailingNewline(t *testing.T) {
	data, _, err := export.Build([]models.Order{delphi()}, time.UTC)
	require.NoError(t, err)
	assert.False(t, bytes.HasSuffix(data, []byte("\n")))
}

func TestBuild_EmptyIsHeaderOnly(t *testing.T) {
	data, n, err := export.Build(nil, time.UTC)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, strings.Join(export.Header, ","), string(data))
}

func TestBuild_QuotesCommas(t *testing.T) {
	o := delphi()
	o.CustomerInfo.SchoolName = "St. Mary's, Nairobi"
	o.CustomerInfo.Area = `Kileleshwa "B"`

	data, _, err := export.Build([]models.Order{o}, time.UTC)
	require.NoError(t, err)

	recs, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	for _, r := range recs {
		assert.Len(t, r, len(export.Header))
	}
	assert.Equal(t, "St. Mary's, Nairobi", recs[1][1])
	assert.Equal(t, `Kileleshwa "B"`, recs[1][4])
}

func TestRows_DateInLocation(t *testing.T) {
	eat := time.FixedZone("EAT", 3*60*60)
	rows := export.Rows([]models.Order{delphi()}, eat)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-03-10 12:05", rows[0][9])
}

func TestRows_DecimalPrecision(t *testing.T) {
	o := delphi()
	o.SelectedKits = []models.OrderItem{
		{KitName: "Odd", Quantity: 3, PricePerKit: decimal.RequireFromString("19.99"), TotalAmount: decimal.RequireFromString("59.97")},
	}
	rows := export.Rows([]models.Order{o}, time.UTC)
	assert.Equal(t, "19.99", rows[0][7])
	assert.Equal(t, "59.97", rows[0][8])
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "aristobox-orders-2025-03-10.csv", export.Filename(time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)))
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("closed") }

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	n, err := export.WriteCSV(&buf, []models.Order{delphi(), delphi()}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 5, strings.Count(buf.String(), "\n")+1)

	_, err = export.WriteCSV(failingWriter{}, []models.Order{delphi()}, time.UTC)
	assert.Error(t, err)
}
