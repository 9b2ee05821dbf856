package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	ShopID uint `json:"shopId"`
	Shop   Shop `json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // smallest currency unit
	Category    string `json:"category"`
	Available   bool   `gorm:"default:true" json:"available"`
	ImageURL    string `json:"imageUrl"`
}
