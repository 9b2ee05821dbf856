package entity

import (
	"gorm.io/gorm"
)

// Order statuses. Completed and Cancelled are terminal.
const (
	OrderPending   = "Pending"
	OrderPreparing = "Preparing"
	OrderReady     = "Ready"
	OrderCompleted = "Completed"
	OrderCancelled = "Cancelled"
)

type Order struct {
	gorm.Model
	ShopID uint `json:"shopId"`
	Shop   Shop `json:"-"`

	// nil for guest orders placed at a table without an account
	UserID *uint `json:"userId,omitempty"`
	User   *User `json:"-"`

	TableNumber string `json:"tableNumber"`
	TotalAmount int64  `json:"totalAmount"`
	Status      string `gorm:"not null;default:Pending" json:"status"`

	Items   []OrderItem `json:"items"`
	Reviews []Review    `json:"-"`
}
