package repository

import (
	"sabor-backend/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// ListAvailable is what clients see: the menu filtered to available dishes.
func (r *ProductRepository) ListAvailable() ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Where("available = ?", true).Order("category ASC, name ASC").Find(&out).Error
	return out, err
}

// ListAll is the admin view, unavailable dishes included.
func (r *ProductRepository) ListAll() ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Order("category ASC, name ASC").Find(&out).Error
	return out, err
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Product{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}

func (r *ProductRepository) GetImage(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Select("image, image_type, image_size").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
