// middlewares/ws_auth.go
package middlewares

import (
	"net/http"

	"github.com/Ashish12122003/Menumate-backend/configs"
	"github.com/Ashish12122003/Menumate-backend/entity"
	"github.com/Ashish12122003/Menumate-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WSAuth reads the JWT from the token query parameter (browser WebSocket
// clients cannot set headers) or from the Authorization header. A missing
// token still connects as a guest so table guests can call a waiter; a
// token that is present but invalid is rejected. Room joins inside the hub
// are gated on the identity set here.
func WSAuth(db *gorm.DB, cfg *configs.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			tokenStr = bearerToken(c)
		}
		if tokenStr == "" {
			c.Next()
			return
		}

		claims, err := utils.ParseToken(tokenStr, cfg.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			return
		}

		switch claims.Audience {
		case utils.AudienceUser:
			c.Set("userId", claims.SubjectID)
		case utils.AudienceVendor:
			var vendor entity.Vendor
			if err := db.First(&vendor, claims.SubjectID).Error; err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "vendor not found"})
				return
			}
			c.Set("vendor", &vendor)
		}

		c.Next()
	}
}
