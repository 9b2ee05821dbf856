// services/order_service.go
package services

import (
	"errors"

	"github.com/Ashish12122003/Menumate-backend/entity"
	"github.com/Ashish12122003/Menumate-backend/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB    *gorm.DB
	Repo  *repository.OrderRepository
	Menu  *repository.MenuRepository
	Shops *ShopService
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, menu *repository.MenuRepository, shops *ShopService) *OrderService {
	return &OrderService{DB: db, Repo: repo, Menu: menu, Shops: shops}
}

type OrderItemInput struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderInput struct {
	ShopID      uint             `json:"shopId" binding:"required"`
	TableNumber string           `json:"tableNumber"`
	Items       []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// Create places an order for a customer, or a guest when userID is nil.
// Item names and prices are snapshotted from the menu and the total is
// computed server-side.
func (s *OrderService) Create(userID *uint, in CreateOrderInput) (*entity.Order, error) {
	if _, err := s.Shops.Get(in.ShopID); err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(in.Items))
	for _, it := range in.Items {
		ids = append(ids, it.MenuItemID)
	}
	menuItems, err := s.Menu.FindForOrder(in.ShopID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]entity.MenuItem, len(menuItems))
	for _, m := range menuItems {
		byID[m.ID] = m
	}

	order := &entity.Order{
		ShopID:      in.ShopID,
		UserID:      userID,
		TableNumber: in.TableNumber,
		Status:      entity.OrderPending,
	}
	for _, it := range in.Items {
		m, ok := byID[it.MenuItemID]
		if !ok {
			return nil, ErrItemUnavailable
		}
		order.Items = append(order.Items, entity.OrderItem{
			MenuItemID: m.ID,
			Name:       m.Name,
			UnitPrice:  m.Price,
			Quantity:   it.Quantity,
		})
		order.TotalAmount += m.Price * int64(it.Quantity)
	}

	if err := s.Repo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetForUser returns the order only to the customer who placed it.
func (s *OrderService) GetForUser(orderID, userID uint) (*entity.Order, error) {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if order.UserID == nil || *order.UserID != userID {
		return nil, &PermissionError{Reason: "You can only view your own orders."}
	}
	return order, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListByUser(userID)
}

// ListForShop is vendor-facing and runs the shop management policy first.
func (s *OrderService) ListForShop(vendor *entity.Vendor, shopID uint, status string) ([]entity.Order, error) {
	if _, err := s.Shops.AuthorizeShop(shopID, vendor); err != nil {
		return nil, err
	}
	return s.Repo.ListByShop(shopID, status)
}
