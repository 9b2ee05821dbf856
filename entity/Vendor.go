package entity

import (
	"gorm.io/gorm"
)

// Vendor roles
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleOwner   = "owner"
)

type Vendor struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:owner" json:"role"`

	// set only for food court managers
	ManagesFoodCourtID *uint      `json:"managesFoodCourt,omitempty"`
	ManagesFoodCourt   *FoodCourt `json:"-"`

	Shops []Shop `gorm:"foreignKey:OwnerID" json:"-"`
}
