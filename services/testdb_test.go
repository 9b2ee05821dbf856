package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Ashish12122003/Menumate-backend/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database migrated with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
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

func seedVendor(t *testing.T, db *gorm.DB, role string, foodCourtID *uint) *entity.Vendor {
	t.Helper()
	v := &entity.Vendor{
		Email:              fmt.Sprintf("%s-%d@test.local", role, seq(db, &entity.Vendor{})),
		Password:           "x",
		Name:               role,
		Role:               role,
		ManagesFoodCourtID: foodCourtID,
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

func seedShop(t *testing.T, db *gorm.DB, ownerID uint, foodCourtID *uint) *entity.Shop {
	t.Helper()
	s := &entity.Shop{Name: "shop", OwnerID: ownerID, FoodCourtID: foodCourtID}
	require.NoError(t, db.Create(s).Error)
	return s
}

func seedUser(t *testing.T, db *gorm.DB, name string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:    fmt.Sprintf("%s-%d@test.local", name, seq(db, &entity.User{})),
		Password: "x",
		Name:     name,
		Phone:    "000",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seq(db *gorm.DB, model any) int64 {
	var n int64
	db.Model(model).Count(&n)
	return n
}
