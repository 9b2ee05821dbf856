package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`

	// Relations — preload only when needed
	Orders  []Order  `json:"-"`
	Reviews []Review `json:"-"`
}
