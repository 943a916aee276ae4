package entity

import (
	"gorm.io/gorm"
)

// Product is one menu dish. Price is stored in centavos.
type Product struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Price       int64  `gorm:"not null" json:"price"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Available   bool   `gorm:"default:true" json:"available"`

	// image stored as BLOB, uploaded base64 from the admin form
	Image     []byte `gorm:"type:blob" json:"-"`
	ImageType string `json:"-"`
	ImageSize int64  `json:"-"`

	OrderItems []OrderItem `json:"-"`
	CartItems  []CartItem  `json:"-"`
}
