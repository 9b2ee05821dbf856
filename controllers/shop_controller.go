// controllers/shop_controller.go
package controllers

import (
	"github.com/Ashish12122003/Menumate-backend/entity"
	"github.com/Ashish12122003/Menumate-backend/pkg/resp"
	"github.com/Ashish12122003/Menumate-backend/services"
	"github.com/Ashish12122003/Menumate-backend/utils"

	"github.com/gin-gonic/gin"
)

type ShopController struct {
	Shops  *services.ShopService
	Upload *services.UploadService
}

func NewShopController(shops *services.ShopService, upload *services.UploadService) *ShopController {
	return &ShopController{Shops: shops, Upload: upload}
}

// GET /api/public/shops
func (ctl *ShopController) PublicList(c *gin.Context) {
	shops, err := ctl.Shops.PublicList()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKCount(c, len(shops), shops)
}

// GET /api/public/shops/:shopId
func (ctl *ShopController) PublicDetail(c *gin.Context) {
	shop, err := ctl.Shops.Get(shopIDParam(c))
	if err != nil {
		serviceError(c, err, "Shop not found")
		return
	}
	resp.OK(c, shop)
}

// GET /api/vendor/shops — scoped by role (admin: all, manager: food court,
// owner: own shops).
func (ctl *ShopController) ListMine(c *gin.Context) {
	shops, err := ctl.Shops.ListForVendor(utils.CurrentVendor(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKCount(c, len(shops), shops)
}

type CreateShopReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	OwnerID     uint   `json:"ownerId"`     // admin only
	FoodCourtID *uint  `json:"foodCourtId"` // admin only
}

// POST /api/vendor/shops
func (ctl *ShopController) Create(c *gin.Context) {
	var req CreateShopReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	shop := entity.Shop{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     req.OwnerID,
		FoodCourtID: req.FoodCourtID,
	}
	if err := ctl.Shops.Create(utils.CurrentVendor(c), &shop); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, "shop created", shop)
}

// POST /api/vendor/shops/:shopId/image — multipart field "image".
// Upload failures are attached to the context and translated by the
// fallback middleware.
func (ctl *ShopController) UploadImage(c *gin.Context) {
	shopID := shopIDParam(c)
	if _, err := ctl.Shops.AuthorizeShop(shopID, utils.CurrentVendor(c)); err != nil {
		serviceError(c, err, "Shop not found")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "an image file is required")
		return
	}

	url, err := ctl.Upload.UploadImage(c.Request.Context(), file)
	if err != nil {
		c.Error(err)
		return
	}

	if err := ctl.Shops.SetImage(shopID, url); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"imageUrl": url})
}
