package repository

import (
	"errors"

	"sabor-backend/entity"

	"gorm.io/gorm"
)

type DiscountRepository struct {
	DB *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) *DiscountRepository {
	return &DiscountRepository{DB: db}
}

// FindRate looks up a code with a case-sensitive exact match. The second
// return reports whether the code exists at all.
func (r *DiscountRepository) FindRate(code string) (float64, bool, error) {
	var d entity.DiscountCode
	err := r.DB.Where("code = ?", code).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if d.Code != code {
		// column collation may match case-insensitively; the resolver is strict
		return 0, false, nil
	}
	return d.Rate, true, nil
}
