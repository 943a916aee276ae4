package repository

import (
	"errors"

	"sabor-backend/entity"
	"sabor-backend/services"

	"gorm.io/gorm"
)

// CartRepository is the GORM side of the persistence bridge: it mirrors a
// whole cart aggregate to its (user, table) scope on every save.
type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// Load returns the stored cart for the scope. A missing row is not an
// error: the session simply starts with an empty cart.
func (r *CartRepository) Load(scope services.ScopeKey) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ? AND table_id = ?", scope.UserID, scope.TableID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.position ASC")
		}).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: scope.UserID, TableID: scope.TableID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Save replaces the stored lines with the aggregate's current lines in one
// transaction (write-through mirror, not a diff).
func (r *CartRepository) Save(scope services.ScopeKey, cart *entity.Cart) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if cart.ID == 0 {
			cart.UserID = scope.UserID
			cart.TableID = scope.TableID
			if err := tx.Omit("Items").Create(cart).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&entity.CartItem{}).Error; err != nil {
			return err
		}
		for i := range cart.Items {
			item := cart.Items[i]
			item.ID = 0
			item.CartID = cart.ID
			item.Position = i
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete erases the scope entirely, used on checkout and logout so a stale
// cart never leaks into the next session on the same table.
func (r *CartRepository) Delete(scope services.ScopeKey) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var c entity.Cart
		err := tx.Where("user_id = ? AND table_id = ?", scope.UserID, scope.TableID).First(&c).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&c).Error
	})
}
