package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	ShopID uint `gorm:"uniqueIndex:idx_shop_qr" json:"shopId"`
	Shop   Shop `json:"-"`

	TableNumber  string `gorm:"not null" json:"tableNumber"`
	QRIdentifier string `gorm:"uniqueIndex:idx_shop_qr;not null" json:"qrIdentifier"`
}
