// services/order_transitions.go
package services

import (
	"errors"

	"github.com/Ashish12122003/Menumate-backend/entity"

	"gorm.io/gorm"
)

// ----- Vendor actions -----

func (s *OrderService) Accept(vendor *entity.Vendor, orderID uint) (*entity.Order, error) {
	return s.transition(vendor, orderID, entity.OrderPending, entity.OrderPreparing)
}

func (s *OrderService) Ready(vendor *entity.Vendor, orderID uint) (*entity.Order, error) {
	return s.transition(vendor, orderID, entity.OrderPreparing, entity.OrderReady)
}

func (s *OrderService) Complete(vendor *entity.Vendor, orderID uint) (*entity.Order, error) {
	return s.transition(vendor, orderID, entity.OrderReady, entity.OrderCompleted)
}

func (s *OrderService) Cancel(vendor *entity.Vendor, orderID uint) (*entity.Order, error) {
	return s.transition(vendor, orderID, entity.OrderPending, entity.OrderCancelled)
}

// transition authorizes against the order's shop, then flips the status
// under a guard. RowsAffected == 0 means someone got there first.
func (s *OrderService) transition(vendor *entity.Vendor, orderID uint, from, to string) (*entity.Order, error) {
	var order *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.FindByID(orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if _, err := s.Shops.AuthorizeShop(o.ShopID, vendor); err != nil {
			return err
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}

		o.Status = to
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
