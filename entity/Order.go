package entity

import (
	"time"

	"gorm.io/gorm"
)

const OrderStatePreparing = "En preparación"

const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

// Order is the immutable record written at checkout. Nothing mutates it
// after creation; the kitchen-facing state lives on State.
type Order struct {
	gorm.Model
	OrderNo     string `gorm:"size:36;uniqueIndex" json:"orderNo"`
	Client      string `gorm:"index" json:"client"`
	TableNumber int    `json:"tableNumber"`

	PaymentMethod string `json:"paymentMethod"` // cash | card
	State         string `json:"state"`

	Subtotal     int64   `json:"subtotal"`
	DiscountRate float64 `json:"discountRate"`
	Total        int64   `json:"total"`

	PlacedAt time.Time `gorm:"index" json:"timestamp"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	Name  string `json:"name"`
	Price int64  `json:"price"`
	Qty   int    `json:"quantity"`
	Total int64  `json:"total"`
}
