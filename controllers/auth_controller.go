// controllers/auth_controller.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/Ashish12122003/Menumate-backend/configs"
	"github.com/Ashish12122003/Menumate-backend/entity"
	"github.com/Ashish12122003/Menumate-backend/pkg/resp"
	"github.com/Ashish12122003/Menumate-backend/repository"
	"github.com/Ashish12122003/Menumate-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	DB    *gorm.DB
	Users *repository.UserRepository
	Cfg   *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Users: repository.NewUserRepository(db), Cfg: cfg}
}

// POST /api/users/register
func (a *AuthController) RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := a.Users.FindByEmail(strings.ToLower(req.Email)); err == nil {
		resp.BadRequest(c, "email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	user := entity.User{
		Email:    strings.ToLower(req.Email),
		Password: string(hashed),
		Name:     req.Name,
		Phone:    req.Phone,
	}
	if err := a.Users.Create(&user); err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, "registered", gin.H{
		"id": user.ID, "email": user.Email, "name": user.Name, "phone": user.Phone,
	})
}

// POST /api/users/login
func (a *AuthController) LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Users.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, "customer", utils.AudienceUser, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token": token,
			"user":  gin.H{"id": user.ID, "email": user.Email, "name": user.Name, "phone": user.Phone},
		},
	})
}

// GET /api/users/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Users.FindByID(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{"id": user.ID, "email": user.Email, "name": user.Name, "phone": user.Phone})
}

// POST /api/vendor/register — self-service shop-owner signup.
// Admins and food court managers are created by the admin instead.
func (a *AuthController) RegisterVendor(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var exist entity.Vendor
	if err := a.DB.Where("email = ?", strings.ToLower(req.Email)).First(&exist).Error; err == nil {
		resp.BadRequest(c, "email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	vendor := entity.Vendor{
		Email:    strings.ToLower(req.Email),
		Password: string(hashed),
		Name:     req.Name,
		Role:     entity.RoleOwner,
	}
	if err := a.DB.Create(&vendor).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, "registered", gin.H{
		"id": vendor.ID, "email": vendor.Email, "name": vendor.Name, "role": vendor.Role,
	})
}

// POST /api/vendor/login
func (a *AuthController) LoginVendor(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var vendor entity.Vendor
	if err := a.DB.Where("email = ?", strings.ToLower(req.Email)).First(&vendor).Error; err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(vendor.Password), []byte(req.Password)); err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(vendor.ID, vendor.Role, utils.AudienceVendor, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token":  token,
			"vendor": gin.H{"id": vendor.ID, "email": vendor.Email, "name": vendor.Name, "role": vendor.Role},
		},
	})
}
