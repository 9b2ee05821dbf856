// repository/analytics_repository.go
package repository

import (
	"context"
	"time"

	"github.com/Ashish12122003/Menumate-backend/entity"

	"gorm.io/gorm"
)

// AnalyticsRepository runs the read-only dashboard aggregations. All order
// queries are scoped to Completed orders of one shop inside a date window.
type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

type ItemStat struct {
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Count      int64  `json:"count"`
}

type TableStat struct {
	TableNumber string `json:"tableNumber"`
	OrderCount  int64  `json:"orderCount"`
}

type CustomerStat struct {
	UserID     uint   `json:"userId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	OrderCount int64  `json:"orderCount"`
}

type CustomerProfile struct {
	UserID    uint      `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *AnalyticsRepository) OrderTotals(ctx context.Context, shopID uint, start, end time.Time) (revenue, orders int64, err error) {
	var row struct {
		Revenue int64
		Orders  int64
	}
	err = r.DB.WithContext(ctx).Model(&entity.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS revenue, COUNT(*) AS orders").
		Where("shop_id = ? AND status = ? AND created_at BETWEEN ? AND ?",
			shopID, entity.OrderCompleted, start, end).
		Scan(&row).Error
	return row.Revenue, row.Orders, err
}

// TopItems returns line-item quantity totals, best sellers first.
// Ties break on item name ascending so the order is deterministic.
func (r *AnalyticsRepository) TopItems(ctx context.Context, shopID uint, start, end time.Time) ([]ItemStat, error) {
	var stats []ItemStat
	err := r.DB.WithContext(ctx).Model(&entity.OrderItem{}).
		Select("order_items.menu_item_id, order_items.name, SUM(order_items.quantity) AS count").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.shop_id = ? AND orders.status = ? AND orders.created_at BETWEEN ? AND ? AND orders.deleted_at IS NULL",
			shopID, entity.OrderCompleted, start, end).
		Group("order_items.menu_item_id, order_items.name").
		Order("count DESC, order_items.name ASC").
		Scan(&stats).Error
	return stats, err
}

// TopTables excludes orders without a table number.
func (r *AnalyticsRepository) TopTables(ctx context.Context, shopID uint, start, end time.Time) ([]TableStat, error) {
	var stats []TableStat
	err := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Select("table_number, COUNT(*) AS order_count").
		Where("shop_id = ? AND status = ? AND created_at BETWEEN ? AND ? AND table_number <> ''",
			shopID, entity.OrderCompleted, start, end).
		Group("table_number").
		Order("order_count DESC, table_number ASC").
		Limit(5).
		Scan(&stats).Error
	return stats, err
}

// RepeatCustomers lists non-guest users with more than one completed order.
func (r *AnalyticsRepository) RepeatCustomers(ctx context.Context, shopID uint, start, end time.Time) ([]CustomerStat, error) {
	var stats []CustomerStat
	err := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Select("orders.user_id, users.name, users.email, users.phone, COUNT(*) AS order_count").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("orders.shop_id = ? AND orders.status = ? AND orders.created_at BETWEEN ? AND ? AND orders.user_id IS NOT NULL",
			shopID, entity.OrderCompleted, start, end).
		Group("orders.user_id, users.name, users.email, users.phone").
		Having("COUNT(*) > 1").
		Order("order_count DESC, orders.user_id ASC").
		Scan(&stats).Error
	return stats, err
}

// AverageRating covers every review the shop ever received, on purpose.
func (r *AnalyticsRepository) AverageRating(ctx context.Context, shopID uint) (float64, error) {
	var avg float64
	err := r.DB.WithContext(ctx).Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0)").
		Where("shop_id = ?", shopID).
		Scan(&avg).Error
	return avg, err
}

// DistinctCustomers resolves every non-guest customer with a completed
// order in range to their profile fields.
func (r *AnalyticsRepository) DistinctCustomers(ctx context.Context, shopID uint, start, end time.Time) ([]CustomerProfile, error) {
	var profiles []CustomerProfile
	err := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Select("orders.user_id, users.name, users.email, users.phone, users.created_at").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("orders.shop_id = ? AND orders.status = ? AND orders.created_at BETWEEN ? AND ? AND orders.user_id IS NOT NULL",
			shopID, entity.OrderCompleted, start, end).
		Group("orders.user_id, users.name, users.email, users.phone, users.created_at").
		Order("orders.user_id ASC").
		Scan(&profiles).Error
	return profiles, err
}
