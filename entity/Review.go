package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	// one review per order, enforced by the store
	OrderID uint  `gorm:"uniqueIndex;not null" json:"orderId"`
	Order   Order `json:"-"`

	UserID uint `json:"userId"`
	User   User `json:"-"`
	ShopID uint `json:"shopId"`
	Shop   Shop `json:"-"`

	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
