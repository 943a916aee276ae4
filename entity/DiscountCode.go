package entity

import (
	"gorm.io/gorm"
)

// DiscountCode maps a promo code to a discount rate in [0,1).
// Matching is case-sensitive, same as the original promo table.
type DiscountCode struct {
	gorm.Model
	Code string  `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Rate float64 `gorm:"not null" json:"rate"`
}
