package middlewares

import (
	"net/http"
	"strings"

	"github.com/Ashish12122003/Menumate-backend/configs"
	"github.com/Ashish12122003/Menumate-backend/entity"
	"github.com/Ashish12122003/Menumate-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

// AuthUser guards customer routes and puts the user id into the context.
func AuthUser(cfg *configs.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing or invalid token"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenStr, cfg.JWTSecret)
		if err != nil || claims.Audience != utils.AudienceUser {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			c.Abort()
			return
		}

		c.Set("userId", claims.SubjectID)
		c.Next()
	}
}

// OptionalAuthUser sets the user id when a valid token is present and
// lets the request through either way. Guest ordering at a table uses this.
func OptionalAuthUser(cfg *configs.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := bearerToken(c); tokenStr != "" {
			if claims, err := utils.ParseToken(tokenStr, cfg.JWTSecret); err == nil && claims.Audience == utils.AudienceUser {
				c.Set("userId", claims.SubjectID)
			}
		}
		c.Next()
	}
}

// AuthVendor guards vendor routes, loads the vendor record into the
// context and (if roles are given) enforces one of them.
func AuthVendor(db *gorm.DB, cfg *configs.Config, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing or invalid token"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenStr, cfg.JWTSecret)
		if err != nil || claims.Audience != utils.AudienceVendor {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			c.Abort()
			return
		}

		var vendor entity.Vendor
		if err := db.First(&vendor, claims.SubjectID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "vendor not found"})
			c.Abort()
			return
		}

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if vendor.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "forbidden"})
				c.Abort()
				return
			}
		}

		c.Set("vendor", &vendor)
		c.Set("vendorId", vendor.ID)
		c.Next()
	}
}
