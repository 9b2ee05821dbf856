// repository/order_repository.go
package repository

import (
	"github.com/Ashish12122003/Menumate-backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(order *entity.Order) error {
	return r.DB.Create(order).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var order entity.Order
	if err := r.DB.Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) ListByUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListByShop(shopID uint, status string) ([]entity.Order, error) {
	q := r.DB.Preload("Items").Where("shop_id = ?", shopID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var orders []entity.Order
	err := q.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard flips status only when the order is still in `from`.
// RowsAffected == 0 means a stale or conflicting transition.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
