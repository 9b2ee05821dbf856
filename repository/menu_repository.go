// repository/menu_repository.go
package repository

import (
	"github.com/Ashish12122003/Menumate-backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) FindByShop(shopID uint, availableOnly bool) ([]entity.MenuItem, error) {
	q := r.DB.Where("shop_id = ?", shopID)
	if availableOnly {
		q = q.Where("available = ?", true)
	}
	var items []entity.MenuItem
	err := q.Order("category, name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindForOrder(shopID uint, ids []uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("shop_id = ? AND id IN ? AND available = ?", shopID, ids, true).
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) Update(shopID, itemID uint, fields map[string]any) (int64, error) {
	tx := r.DB.Model(&entity.MenuItem{}).
		Where("id = ? AND shop_id = ?", itemID, shopID).
		Updates(fields)
	return tx.RowsAffected, tx.Error
}

func (r *MenuRepository) Delete(shopID, itemID uint) (int64, error) {
	tx := r.DB.Where("id = ? AND shop_id = ?", itemID, shopID).Delete(&entity.MenuItem{})
	return tx.RowsAffected, tx.Error
}
