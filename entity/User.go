package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `gorm:"not null" json:"name"`
	Role     string `gorm:"not null;default:client" json:"role"`

	Orders []Order `json:"-"`
	Carts  []Cart  `json:"-"`
}
