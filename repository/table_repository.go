package repository

import (
	"sabor-backend/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) List() ([]entity.Table, error) {
	var out []entity.Table
	err := r.DB.Order("table_number ASC").Find(&out).Error
	return out, err
}

func (r *TableRepository) FindByID(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// SetOccupied flips the occupied flag. Selecting guards against taking an
// already occupied table by matching on the current flag value, so two
// racing selects cannot both win.
func (r *TableRepository) SetOccupied(id uint, occupied bool) (bool, error) {
	res := r.DB.Model(&entity.Table{}).
		Where("id = ? AND occupied = ?", id, !occupied).
		Update("occupied", occupied)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Table{}, id).Error
}
