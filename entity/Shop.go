package entity

import (
	"gorm.io/gorm"
)

type Shop struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`

	OwnerID uint   `json:"ownerId"`
	Owner   Vendor `gorm:"foreignKey:OwnerID" json:"-"`

	// nil for standalone shops; set when the shop sits in a food court
	FoodCourtID *uint      `json:"foodCourtId,omitempty"`
	FoodCourt   *FoodCourt `json:"-"`

	Tables    []Table    `json:"-"`
	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
	Reviews   []Review   `json:"-"`
}
