package entity

import (
	"gorm.io/gorm"
)

// CartItem snapshots the product's name and price at the moment it was
// added, so the cart survives later catalog edits unchanged.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Qty      int    `json:"quantity"`
	Position int    `json:"-"`
}
