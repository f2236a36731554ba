package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusExported  OrderStatus = "exported"
)

type KitCategory string

const (
	KitCategorySTEM     KitCategory = "stem"
	KitCategoryCommerce KitCategory = "commerce"
	KitCategoryArts     KitCategory = "arts"
	KitCategoryPrimary  KitCategory = "primary"
)

type AgeGroup string

const (
	AgeGroupPrimary   AgeGroup = "primary"
	AgeGroupSecondary AgeGroup = "secondary"
	AgeGroupSenior    AgeGroup = "senior"
)

// CustomerInfo: данные школы. Хранится отдельной строкой в customers
// и копией (снимком) внутри каждого заказа.
type CustomerInfo struct {
	SchoolName    string    `json:"schoolName" gorm:"type:varchar(255);not null;index"`
	ContactPerson string    `json:"contactPerson" gorm:"type:varchar(255);not null"`
	Phone         string    `json:"phone" gorm:"type:varchar(32);not null;index"`
	Area          string    `json:"area" gorm:"type:varchar(255);not null;index"`
	StudentCount  *int      `json:"studentCount,omitempty" gorm:"check:chk_customers_student_count,student_count IS NULL OR student_count >= 1"`
	CreatedAt     time.Time `json:"createdAt" gorm:"not null;index"`
}

type Customer struct {
	ID           uint `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerInfo `gorm:"embedded"`
}

func (Customer) TableName() string { return "customers" }

type Kit struct {
	ID            string          `json:"id" gorm:"type:varchar(64);primaryKey"`
	KitName       string          `json:"kitName" gorm:"type:varchar(255);not null;index"`
	Description   string          `json:"description" gorm:"type:text"`
	TargetClasses []int           `json:"targetClasses" gorm:"serializer:json;type:text"`
	Subjects      []string        `json:"subjects" gorm:"serializer:json;type:text"`
	Contents      []string        `json:"contents" gorm:"serializer:json;type:text"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null;index;check:chk_kits_price_positive,price > 0"`
	Category      KitCategory     `json:"category" gorm:"type:varchar(16);not null;index"`
	AgeGroup      AgeGroup        `json:"ageGroup" gorm:"type:varchar(16);not null;index"`
	IsActive      bool            `json:"isActive" gorm:"not null;index"`
}

func (Kit) TableName() string { return "kits" }

// OrderItem живёт только внутри Order (json-колонка selected_kits).
type OrderItem struct {
	KitID       string          `json:"kitId"`
	KitName     string          `json:"kitName"`
	Quantity    int             `json:"quantity"`
	PricePerKit decimal.Decimal `json:"pricePerKit"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Notes       string          `json:"notes,omitempty"`
}

type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID         string          `json:"orderId" gorm:"type:varchar(64);not null;uniqueIndex"`
	CustomerInfo    CustomerInfo    `json:"customerInfo" gorm:"serializer:json;type:text;not null"`
	SelectedKits    []OrderItem     `json:"selectedKits" gorm:"serializer:json;type:text;not null"`
	TotalOrderValue decimal.Decimal `json:"totalOrderValue" gorm:"type:decimal(12,2);not null;index"`
	OrderDate       time.Time       `json:"orderDate" gorm:"not null;index;index:ix_orders_status_date,priority:2"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(16);not null;default:'pending';index;index:ix_orders_status_date,priority:1;check:chk_orders_status_allowed,status IN ('pending','confirmed','delivered','exported')"`
	Signature       *string         `json:"signature,omitempty" gorm:"type:text"`
	Notes           *string         `json:"notes,omitempty" gorm:"type:text"`
}

func (Order) TableName() string { return "orders" }

// ItemsTotal пересчитывает сумму позиций. Используется только при создании
// заказа, сохранённое TotalOrderValue потом не перепроверяется.
func ItemsTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalAmount)
	}
	return total
}
