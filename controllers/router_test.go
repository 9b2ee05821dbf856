package controllers

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Ashish12122003/Menumate-backend/configs"
	"github.com/Ashish12122003/Menumate-backend/entity"
	"github.com/Ashish12122003/Menumate-backend/middlewares"
	"github.com/Ashish12122003/Menumate-backend/repository"
	"github.com/Ashish12122003/Menumate-backend/services"
	"github.com/Ashish12122003/Menumate-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testCfg = &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:ctl_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Vendor{},
		&entity.FoodCourt{}, &entity.Shop{},
		&entity.Table{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{},
	))
	return db
}

// newTestRouter wires the table and review surface the same way the real
// route table does, minus the pieces that need external services.
func newTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	shopSvc := services.NewShopService(repository.NewShopRepository(db))
	tableSvc := services.NewTableService(repository.NewTableRepository(db))
	reviewSvc := services.NewReviewService(repository.NewReviewRepository(db), repository.NewOrderRepository(db))

	tableCtrl := NewTableController(shopSvc, tableSvc)
	reviewCtrl := NewReviewController(reviewSvc)
	authCtrl := NewAuthController(db, testCfg)

	r.GET("/api/public/shops/:shopId/reviews", reviewCtrl.ListForShop)

	r.POST("/api/users/register", authCtrl.RegisterUser)
	r.POST("/api/users/login", authCtrl.LoginUser)
	r.GET("/api/users/me", middlewares.AuthUser(testCfg), authCtrl.Me)

	shops := r.Group("/api/shops", middlewares.AuthVendor(db, testCfg))
	{
		shops.POST("/:shopId/tables", tableCtrl.Create)
		shops.GET("/:shopId/tables", tableCtrl.List)
		shops.DELETE("/:shopId/tables/:qrIdentifier", tableCtrl.Delete)
	}

	orders := r.Group("/api/orders", middlewares.AuthUser(testCfg))
	{
		orders.POST("/:orderId/review", reviewCtrl.Create)
	}

	adminCtrl := NewAdminController(db)
	admin := r.Group("/api/admin", middlewares.AuthVendor(db, testCfg, entity.RoleAdmin))
	{
		admin.POST("/food-courts", adminCtrl.CreateFoodCourt)
		admin.GET("/food-courts", adminCtrl.ListFoodCourts)
		admin.POST("/vendors", adminCtrl.CreateManager)
	}

	return r
}

func vendorToken(t *testing.T, v *entity.Vendor) string {
	t.Helper()
	token, err := utils.GenerateToken(v.ID, v.Role, utils.AudienceVendor, testCfg.JWTSecret, testCfg.JWTTTL)
	require.NoError(t, err)
	return token
}

func userToken(t *testing.T, u *entity.User) string {
	t.Helper()
	token, err := utils.GenerateToken(u.ID, "customer", utils.AudienceUser, testCfg.JWTSecret, testCfg.JWTTTL)
	require.NoError(t, err)
	return token
}

func seedVendor(t *testing.T, db *gorm.DB, role string) *entity.Vendor {
	t.Helper()
	var n int64
	db.Model(&entity.Vendor{}).Count(&n)
	v := &entity.Vendor{
		Email:    fmt.Sprintf("%s-%d@test.local", role, n),
		Password: "x",
		Name:     role,
		Role:     role,
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

func seedShop(t *testing.T, db *gorm.DB, owner *entity.Vendor) *entity.Shop {
	t.Helper()
	s := &entity.Shop{Name: owner.Name + "'s shop", OwnerID: owner.ID}
	require.NoError(t, db.Create(s).Error)
	return s
}

func seedUser(t *testing.T, db *gorm.DB, name string) *entity.User {
	t.Helper()
	var n int64
	db.Model(&entity.User{}).Count(&n)
	u := &entity.User{
		Email:    fmt.Sprintf("%s-%d@test.local", name, n),
		Password: "x",
		Name:     name,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}
