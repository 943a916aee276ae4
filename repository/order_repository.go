package repository

import (
	"sabor-backend/entity"
	"sabor-backend/services"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create writes the order and its items in a single transaction: either
// the whole record lands or nothing does.
func (r *OrderRepository) Create(o *entity.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// List applies the history filters: date/time window, client name, and
// sorting by date or total in either direction.
func (r *OrderRepository) List(f services.OrderFilters) ([]entity.Order, error) {
	q := r.DB.Model(&entity.Order{}).Preload("Items")

	if f.ClientName != "" {
		q = q.Where("client = ?", f.ClientName)
	}
	if start, ok := f.StartBound(); ok {
		q = q.Where("placed_at >= ?", start)
	}
	if end, ok := f.EndBound(); ok {
		q = q.Where("placed_at <= ?", end)
	}

	column := "placed_at"
	if f.SortBy == services.SortByTotal {
		column = "total"
	}
	dir := "DESC"
	if f.SortOrder == services.SortAsc {
		dir = "ASC"
	}
	q = q.Order(column + " " + dir)

	var out []entity.Order
	err := q.Find(&out).Error
	return out, err
}
