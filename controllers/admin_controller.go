// controllers/admin_controller.go
package controllers

import (
	"strings"

	"github.com/Ashish12122003/Menumate-backend/entity"
	"github.com/Ashish12122003/Menumate-backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminController holds the admin-only surface: food courts and their
// managers. Every route behind it already passed the admin role check.
type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// POST /api/admin/food-courts
func (ctl *AdminController) CreateFoodCourt(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fc := entity.FoodCourt{Name: req.Name, Location: req.Location}
	if err := ctl.DB.Create(&fc).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, "food court created", fc)
}

// GET /api/admin/food-courts
func (ctl *AdminController) ListFoodCourts(c *gin.Context) {
	var courts []entity.FoodCourt
	if err := ctl.DB.Find(&courts).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKCount(c, len(courts), courts)
}

// POST /api/admin/vendors — create a vendor who manages one food court.
func (ctl *AdminController) CreateManager(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=6"`
		Name        string `json:"name" binding:"required"`
		FoodCourtID uint   `json:"foodCourtId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var fc entity.FoodCourt
	if err := ctl.DB.First(&fc, req.FoodCourtID).Error; err != nil {
		resp.NotFound(c, "food court not found")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	manager := entity.Vendor{
		Email:              strings.ToLower(req.Email),
		Password:           string(hashed),
		Name:               req.Name,
		Role:               entity.RoleManager,
		ManagesFoodCourtID: &fc.ID,
	}
	if err := ctl.DB.Create(&manager).Error; err != nil {
		resp.BadRequest(c, "email already registered")
		return
	}

	resp.Created(c, "manager created", gin.H{
		"id": manager.ID, "email": manager.Email, "name": manager.Name,
		"role": manager.Role, "managesFoodCourt": fc.ID,
	})
}
