// controllers/menu_controller.go
package controllers

import (
	"strconv"

	"github.com/Ashish12122003/Menumate-backend/entity"
	"github.com/Ashish12122003/Menumate-backend/pkg/resp"
	"github.com/Ashish12122003/Menumate-backend/repository"
	"github.com/Ashish12122003/Menumate-backend/services"
	"github.com/Ashish12122003/Menumate-backend/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Shops *services.ShopService
	Menu  *repository.MenuRepository
}

func NewMenuController(shops *services.ShopService, menu *repository.MenuRepository) *MenuController {
	return &MenuController{Shops: shops, Menu: menu}
}

type MenuItemReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=1"`
	Category    string `json:"category"`
	Available   *bool  `json:"available"`
	ImageURL    string `json:"imageUrl"`
}

// GET /api/public/shops/:shopId/menu — the customer QR browse surface,
// available items only.
func (ctl *MenuController) PublicMenu(c *gin.Context) {
	shopID := shopIDParam(c)
	if _, err := ctl.Shops.Get(shopID); err != nil {
		serviceError(c, err, "Shop not found")
		return
	}

	items, err := ctl.Menu.FindByShop(shopID, true)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKCount(c, len(items), items)
}

// GET /api/shops/:shopId/menu — vendor view, includes unavailable items.
func (ctl *MenuController) List(c *gin.Context) {
	shopID := shopIDParam(c)
	if _, err := ctl.Shops.AuthorizeShop(shopID, utils.CurrentVendor(c)); err != nil {
		serviceError(c, err, "Shop not found")
		return
	}

	items, err := ctl.Menu.FindByShop(shopID, false)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKCount(c, len(items), items)
}

// POST /api/shops/:shopId/menu
func (ctl *MenuController) Create(c *gin.Context) {
	shopID := shopIDParam(c)
	if _, err := ctl.Shops.AuthorizeShop(shopID, utils.CurrentVendor(c)); err != nil {
		serviceError(c, err, "Shop not found")
		return
	}

	var req MenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{
		ShopID:      shopID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   true,
		ImageURL:    req.ImageURL,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if err := ctl.Menu.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, "menu item created", item)
}

// PATCH /api/shops/:shopId/menu/:itemId
func (ctl *MenuController) Update(c *gin.Context) {
	shopID := shopIDParam(c)
	itemID, _ := strconv.ParseUint(c.Param("itemId"), 10, 64)

	if _, err := ctl.Shops.AuthorizeShop(shopID, utils.CurrentVendor(c)); err != nil {
		serviceError(c, err, "Shop not found")
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Price       *int64  `json:"price"`
		Category    *string `json:"category"`
		Available   *bool   `json:"available"`
		ImageURL    *string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Available != nil {
		fields["available"] = *req.Available
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if len(fields) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	affected, err := ctl.Menu.Update(shopID, uint(itemID), fields)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if affected == 0 {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OKMessage(c, "menu item updated")
}

// DELETE /api/shops/:shopId/menu/:itemId
func (ctl *MenuController) Delete(c *gin.Context) {
	shopID := shopIDParam(c)
	itemID, _ := strconv.ParseUint(c.Param("itemId"), 10, 64)

	if _, err := ctl.Shops.AuthorizeShop(shopID, utils.CurrentVendor(c)); err != nil {
		serviceError(c, err, "Shop not found")
		return
	}

	affected, err := ctl.Menu.Delete(shopID, uint(itemID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if affected == 0 {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OKMessage(c, "menu item deleted")
}
