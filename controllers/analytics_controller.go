// controllers/analytics_controller.go
package controllers

import (
	"github.com/Ashish12122003/Menumate-backend/pkg/resp"
	"github.com/Ashish12122003/Menumate-backend/services"
	"github.com/Ashish12122003/Menumate-backend/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Analytics: analytics}
}

// GET /api/vendor/shops/:shopId/analytics?duration=day|week|month|3month|6month
// Anything else means all-time.
func (ctl *AnalyticsController) Dashboard(c *gin.Context) {
	duration := c.DefaultQuery("duration", "day")

	dash, err := ctl.Analytics.ShopDashboard(c.Request.Context(), utils.CurrentVendor(c), shopIDParam(c), duration)
	if err != nil {
		serviceError(c, err, "Shop not found")
		return
	}
	resp.OK(c, dash)
}
