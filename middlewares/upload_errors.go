package middlewares

import (
	"errors"
	"log"
	"net/http"

	"github.com/Ashish12122003/Menumate-backend/services"

	"github.com/gin-gonic/gin"
)

// UploadErrorFallback maps known upload failures attached via c.Error to
// specific 400 responses; anything else becomes a generic 500.
func UploadErrorFallback() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		switch {
		case errors.Is(err, services.ErrFileTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "File too large. Maximum size is 5MB"})
		case errors.Is(err, services.ErrNotAnImage):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Only image files are allowed"})
		case errors.Is(err, services.ErrUploadFailed):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image upload failed. Please try again."})
		default:
			log.Printf("unhandled error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server Error"})
		}
	}
}
