// repository/shop_repository.go
package repository

import (
	"github.com/Ashish12122003/Menumate-backend/entity"

	"gorm.io/gorm"
)

type ShopRepository struct {
	DB *gorm.DB
}

func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{DB: db}
}

func (r *ShopRepository) FindByID(id uint) (*entity.Shop, error) {
	var shop entity.Shop
	if err := r.DB.First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *ShopRepository) FindAll() ([]entity.Shop, error) {
	var shops []entity.Shop
	err := r.DB.Find(&shops).Error
	return shops, err
}

func (r *ShopRepository) FindByOwner(ownerID uint) ([]entity.Shop, error) {
	var shops []entity.Shop
	err := r.DB.Where("owner_id = ?", ownerID).Find(&shops).Error
	return shops, err
}

func (r *ShopRepository) FindByFoodCourt(foodCourtID uint) ([]entity.Shop, error) {
	var shops []entity.Shop
	err := r.DB.Where("food_court_id = ?", foodCourtID).Find(&shops).Error
	return shops, err
}

func (r *ShopRepository) Create(shop *entity.Shop) error {
	return r.DB.Create(shop).Error
}

func (r *ShopRepository) UpdateImageURL(shopID uint, url string) error {
	return r.DB.Model(&entity.Shop{}).Where("id = ?", shopID).Update("image_url", url).Error
}
