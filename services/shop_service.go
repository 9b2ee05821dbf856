// services/shop_service.go
package services

import (
	"errors"

	"github.com/Ashish12122003/Menumate-backend/entity"
	"github.com/Ashish12122003/Menumate-backend/repository"

	"gorm.io/gorm"
)

type ShopService struct {
	Repo *repository.ShopRepository
}

func NewShopService(repo *repository.ShopRepository) *ShopService {
	return &ShopService{Repo: repo}
}

// AuthorizeShop loads the shop and runs the management policy against it.
// Returns ErrNotFound when the shop does not exist and a PermissionError
// carrying the denial reason when the vendor may not manage it.
func (s *ShopService) AuthorizeShop(shopID uint, vendor *entity.Vendor) (*entity.Shop, error) {
	shop, err := s.Repo.FindByID(shopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if d := Authorize(ActorFromVendor(vendor), shop); !d.Allowed {
		return nil, &PermissionError{Reason: d.Reason}
	}
	return shop, nil
}

func (s *ShopService) Get(id uint) (*entity.Shop, error) {
	shop, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return shop, nil
}

func (s *ShopService) PublicList() ([]entity.Shop, error) {
	return s.Repo.FindAll()
}

// ListForVendor scopes the listing by role: admins see everything,
// managers see their food court, owners see their own shops.
func (s *ShopService) ListForVendor(vendor *entity.Vendor) ([]entity.Shop, error) {
	switch vendor.Role {
	case entity.RoleAdmin:
		return s.Repo.FindAll()
	case entity.RoleManager:
		if vendor.ManagesFoodCourtID == nil {
			return []entity.Shop{}, nil
		}
		return s.Repo.FindByFoodCourt(*vendor.ManagesFoodCourtID)
	default:
		return s.Repo.FindByOwner(vendor.ID)
	}
}

// Create makes a shop for its owner. Only admins may create shops for
// another vendor or place them into a food court.
func (s *ShopService) Create(vendor *entity.Vendor, shop *entity.Shop) error {
	if vendor.Role != entity.RoleAdmin {
		shop.OwnerID = vendor.ID
		shop.FoodCourtID = nil
	}
	if shop.OwnerID == 0 {
		shop.OwnerID = vendor.ID
	}
	return s.Repo.Create(shop)
}

func (s *ShopService) SetImage(shopID uint, url string) error {
	return s.Repo.UpdateImageURL(shopID, url)
}
