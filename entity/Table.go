package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	TableNumber int  `gorm:"uniqueIndex;not null" json:"tableNumber"`
	Occupied    bool `gorm:"default:false" json:"occupied"`

	Carts []Cart `json:"-"`
}
