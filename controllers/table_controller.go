// controllers/table_controller.go
package controllers

import (
	"fmt"
	"strconv"

	"github.com/Ashish12122003/Menumate-backend/pkg/resp"
	"github.com/Ashish12122003/Menumate-backend/services"
	"github.com/Ashish12122003/Menumate-backend/utils"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	Shops  *services.ShopService
	Tables *services.TableService
}

func NewTableController(shops *services.ShopService, tables *services.TableService) *TableController {
	return &TableController{Shops: shops, Tables: tables}
}

// ===== DTO =====

type CreateTablesReq struct {
	TableNumber  string                `json:"tableNumber"`
	QRIdentifier string                `json:"qrIdentifier"`
	TableNumbers []services.TableInput `json:"tableNumbers"`
}

func shopIDParam(c *gin.Context) uint {
	id, _ := strconv.ParseUint(c.Param("shopId"), 10, 64)
	return uint(id)
}

// ===== Handlers =====

// POST /api/shops/:shopId/tables
// Accepts a single {tableNumber, qrIdentifier} or a batch in tableNumbers.
func (ctl *TableController) Create(c *gin.Context) {
	shopID := shopIDParam(c)

	if _, err := ctl.Shops.AuthorizeShop(shopID, utils.CurrentVendor(c)); err != nil {
		serviceError(c, err, "Shop not found")
		return
	}

	var req CreateTablesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var inputs []services.TableInput
	switch {
	case len(req.TableNumbers) > 0:
		for _, t := range req.TableNumbers {
			if t.TableNumber == "" || t.QRIdentifier == "" {
				resp.BadRequest(c, "A tableNumber and qrIdentifier are required.")
				return
			}
		}
		inputs = req.TableNumbers
	case req.TableNumber != "" && req.QRIdentifier != "":
		inputs = []services.TableInput{{TableNumber: req.TableNumber, QRIdentifier: req.QRIdentifier}}
	default:
		resp.BadRequest(c, "A tableNumber and qrIdentifier are required.")
		return
	}

	created, err := ctl.Tables.Create(shopID, inputs)
	if err != nil {
		resp.BadRequest(c, "could not create tables, qr identifiers must be unique per shop")
		return
	}

	resp.Created(c, fmt.Sprintf("%d QR code(s) created successfully.", len(created)), created)
}

// GET /api/shops/:shopId/tables
func (ctl *TableController) List(c *gin.Context) {
	shopID := shopIDParam(c)

	if _, err := ctl.Shops.AuthorizeShop(shopID, utils.CurrentVendor(c)); err != nil {
		serviceError(c, err, "Shop not found")
		return
	}

	tables, err := ctl.Tables.List(shopID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKCount(c, len(tables), tables)
}

// DELETE /api/shops/:shopId/tables/:qrIdentifier
func (ctl *TableController) Delete(c *gin.Context) {
	shopID := shopIDParam(c)

	if _, err := ctl.Shops.AuthorizeShop(shopID, utils.CurrentVendor(c)); err != nil {
		serviceError(c, err, "Shop not found")
		return
	}

	if err := ctl.Tables.Delete(shopID, c.Param("qrIdentifier")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Table deleted successfully")
}
