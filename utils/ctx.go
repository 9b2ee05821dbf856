package utils

import (
	"github.com/Ashish12122003/Menumate-backend/entity"

	"github.com/gin-gonic/gin"
)

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

// CurrentVendor returns the vendor record the auth middleware loaded.
func CurrentVendor(c *gin.Context) *entity.Vendor {
	if v, ok := c.Get("vendor"); ok {
		if vendor, ok := v.(*entity.Vendor); ok {
			return vendor
		}
	}
	return nil
}
