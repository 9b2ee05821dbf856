package entity

import (
	"gorm.io/gorm"
)

type FoodCourt struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Location string `json:"location"`

	Shops []Shop `json:"-"`
}
