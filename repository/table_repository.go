// repository/table_repository.go
package repository

import (
	"github.com/Ashish12122003/Menumate-backend/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

// InsertMany writes the whole batch in one statement.
func (r *TableRepository) InsertMany(tables []entity.Table) error {
	return r.DB.Create(&tables).Error
}

func (r *TableRepository) FindByShop(shopID uint) ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Where("shop_id = ?", shopID).Find(&tables).Error
	return tables, err
}

func (r *TableRepository) DeleteByShopAndQR(shopID uint, qrIdentifier string) error {
	return r.DB.Where("shop_id = ? AND qr_identifier = ?", shopID, qrIdentifier).
		Delete(&entity.Table{}).Error
}
