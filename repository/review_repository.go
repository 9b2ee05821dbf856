// repository/review_repository.go
package repository

import (
	"time"

	"github.com/Ashish12122003/Menumate-backend/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) ExistsForOrder(orderID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).Where("order_id = ?", orderID).Count(&count).Error
	return count > 0, err
}

// ShopReview is a review annotated with the reviewer's display name only.
type ShopReview struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *ReviewRepository) ListByShop(shopID uint) ([]ShopReview, error) {
	var rows []ShopReview
	err := r.DB.Table("reviews").
		Select("reviews.id, reviews.rating, reviews.comment, reviews.created_at, users.name AS user_name").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.shop_id = ? AND reviews.deleted_at IS NULL", shopID).
		Order("reviews.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ReviewRepository) Stats(shopID uint) (avg float64, count int64, err error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err = r.DB.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("shop_id = ?", shopID).
		Scan(&row).Error
	return row.Avg, row.Count, err
}
