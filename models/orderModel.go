package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

func (s OrderStatus) Valid() bool {
	return s == OrderStatusPending || s == OrderStatusDelivered
}

type Order struct {
	gorm.Model
	UserID     uint            `json:"userId" gorm:"not null;index"`
	Total      decimal.Decimal `json:"total" gorm:"type:decimal(12,2);not null"`
	Status     OrderStatus     `json:"status" gorm:"size:20;not null;index"`
	OrderItems []OrderItem     `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// ItemsTotal sums unit price times quantity over the order's lines.
func (o Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.OrderItems {
		total = total.Add(item.LineTotal())
	}
	return total
}

// OrderItem stores the unit price captured at checkout, never a live catalog price.
type OrderItem struct {
	gorm.Model
	OrderID   uint            `json:"orderId" gorm:"not null;index"`
	ProductID uint            `json:"productId" gorm:"not null;index"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	UnitPrice decimal.Decimal `json:"unitPrice" gorm:"type:decimal(12,2);not null"`
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type OrderStatusData struct {
	Status OrderStatus `json:"status" binding:"required"`
}

// RevenueReport summarises delivered orders.
type RevenueReport struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	DailySales   []DailySales    `json:"dailySales"`
	TopProducts  []TopProduct    `json:"topProducts"`
}

type DailySales struct {
	Date    time.Time       `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

type TopProduct struct {
	ProductID    uint            `json:"productId"`
	Name         string          `json:"name"`
	QuantitySold int             `json:"quantitySold"`
	Revenue      decimal.Decimal `json:"revenue"`
}
