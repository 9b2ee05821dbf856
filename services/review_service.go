// services/review_service.go
package services

import (
	"errors"
	"math"
	"strings"

	"github.com/Ashish12122003/Menumate-backend/entity"
	"github.com/Ashish12122003/Menumate-backend/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	Reviews *repository.ReviewRepository
	Orders  *repository.OrderRepository
}

func NewReviewService(reviews *repository.ReviewRepository, orders *repository.OrderRepository) *ReviewService {
	return &ReviewService{Reviews: reviews, Orders: orders}
}

// Create checks the preconditions in order, each with its own failure:
// order exists, order belongs to the caller, order is completed, and no
// review exists yet. The unique index on order_id is the source of truth
// for the last one; the lookup is only a fast path.
func (s *ReviewService) Create(userID, orderID uint, rating int, comment string) (*entity.Review, error) {
	order, err := s.Orders.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if order.UserID == nil || *order.UserID != userID {
		return nil, &PermissionError{Reason: "You can only review your own orders."}
	}
	if order.Status != entity.OrderCompleted {
		return nil, ErrOrderNotCompleted
	}

	exists, err := s.Reviews.ExistsForOrder(orderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateReview
	}

	review := &entity.Review{
		OrderID: orderID,
		UserID:  userID,
		ShopID:  order.ShopID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.Reviews.Create(review); err != nil {
		// concurrent submission lost the race against the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrDuplicateReview
		}
		return nil, err
	}
	return review, nil
}

type ShopReviews struct {
	Reviews       []repository.ShopReview
	AverageRating float64
	ReviewCount   int64
}

// ListForShop is public: newest first, reviewer display name only, plus
// the aggregate rating rounded to one decimal (0 when there are none).
func (s *ReviewService) ListForShop(shopID uint) (*ShopReviews, error) {
	reviews, err := s.Reviews.ListByShop(shopID)
	if err != nil {
		return nil, err
	}

	avg, count, err := s.Reviews.Stats(shopID)
	if err != nil {
		return nil, err
	}

	return &ShopReviews{
		Reviews:       reviews,
		AverageRating: math.Round(avg*10) / 10,
		ReviewCount:   count,
	}, nil
}
