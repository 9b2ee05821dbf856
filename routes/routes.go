package routes

import (
	"github.com/Ashish12122003/Menumate-backend/configs"
	"github.com/Ashish12122003/Menumate-backend/controllers"
	"github.com/Ashish12122003/Menumate-backend/entity"
	"github.com/Ashish12122003/Menumate-backend/middlewares"
	"github.com/Ashish12122003/Menumate-backend/repository"
	"github.com/Ashish12122003/Menumate-backend/services"
	"github.com/Ashish12122003/Menumate-backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.NotifyHub, upload *services.UploadService) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) })

	// Repositories
	shopRepo := repository.NewShopRepository(db)
	tableRepo := repository.NewTableRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Services
	shopSvc := services.NewShopService(shopRepo)
	tableSvc := services.NewTableService(tableRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, shopSvc)
	reviewSvc := services.NewReviewService(reviewRepo, orderRepo)
	analyticsSvc := services.NewAnalyticsService(analyticsRepo, shopSvc)

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	adminCtrl := controllers.NewAdminController(db)
	shopCtrl := controllers.NewShopController(shopSvc, upload)
	tableCtrl := controllers.NewTableController(shopSvc, tableSvc)
	menuCtrl := controllers.NewMenuController(shopSvc, menuRepo)
	orderCtrl := controllers.NewOrderController(orderSvc, hub)
	vendorOrderCtrl := controllers.NewVendorOrderController(orderSvc, hub)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	analyticsCtrl := controllers.NewAnalyticsController(analyticsSvc)

	// Public — table QR browse surface
	pub := r.Group("/api/public")
	{
		pub.GET("/shops", shopCtrl.PublicList)
		pub.GET("/shops/:shopId", shopCtrl.PublicDetail)
		pub.GET("/shops/:shopId/menu", menuCtrl.PublicMenu)
		pub.GET("/shops/:shopId/reviews", reviewCtrl.ListForShop)
	}

	// Users (customers)
	users := r.Group("/api/users")
	{
		users.POST("/register", authCtrl.RegisterUser)
		users.POST("/login", authCtrl.LoginUser)
	}
	usersAuth := users.Group("", middlewares.AuthUser(cfg))
	{
		usersAuth.GET("/me", authCtrl.Me)
		usersAuth.GET("/orders", orderCtrl.ListForMe)
	}

	// Orders — creation allows guests at a table, the rest needs a login
	r.POST("/api/orders", middlewares.OptionalAuthUser(cfg), orderCtrl.Create)
	ordersAuth := r.Group("/api/orders", middlewares.AuthUser(cfg))
	{
		ordersAuth.GET("/:orderId", orderCtrl.Detail)
		ordersAuth.POST("/:orderId/review", reviewCtrl.Create)
	}

	// Shop sub-resources (tables, menu) — any vendor role, the layered
	// policy inside the services decides who actually gets through
	shops := r.Group("/api/shops", middlewares.AuthVendor(db, cfg))
	{
		shops.POST("/:shopId/tables", tableCtrl.Create)
		shops.GET("/:shopId/tables", tableCtrl.List)
		shops.DELETE("/:shopId/tables/:qrIdentifier", tableCtrl.Delete)

		shops.GET("/:shopId/menu", menuCtrl.List)
		shops.POST("/:shopId/menu", menuCtrl.Create)
		shops.PATCH("/:shopId/menu/:itemId", menuCtrl.Update)
		shops.DELETE("/:shopId/menu/:itemId", menuCtrl.Delete)
	}

	// Vendor
	vendor := r.Group("/api/vendor")
	{
		vendor.POST("/register", authCtrl.RegisterVendor)
		vendor.POST("/login", authCtrl.LoginVendor)
	}
	vendorAuth := vendor.Group("", middlewares.AuthVendor(db, cfg))
	{
		vendorAuth.GET("/shops", shopCtrl.ListMine)
		vendorAuth.POST("/shops", shopCtrl.Create)
		vendorAuth.POST("/shops/:shopId/image", middlewares.UploadErrorFallback(), shopCtrl.UploadImage)

		vendorAuth.GET("/shops/:shopId/orders", vendorOrderCtrl.ListForShop)
		vendorAuth.PATCH("/orders/:orderId/accept", vendorOrderCtrl.Accept)
		vendorAuth.PATCH("/orders/:orderId/ready", vendorOrderCtrl.Ready)
		vendorAuth.PATCH("/orders/:orderId/complete", vendorOrderCtrl.Complete)
		vendorAuth.PATCH("/orders/:orderId/cancel", vendorOrderCtrl.Cancel)

		vendorAuth.GET("/shops/:shopId/analytics", analyticsCtrl.Dashboard)
	}

	// Admin
	admin := r.Group("/api/admin", middlewares.AuthVendor(db, cfg, entity.RoleAdmin))
	{
		admin.POST("/food-courts", adminCtrl.CreateFoodCourt)
		admin.GET("/food-courts", adminCtrl.ListFoodCourts)
		admin.POST("/vendors", adminCtrl.CreateManager)
	}

	// Real-time notifications — token optional (guests), identity gates joins
	r.GET("/ws/notifications", middlewares.WSAuth(db, cfg), hub.HandleWebSocket)
}
