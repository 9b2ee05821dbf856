// controllers/vendor_order_controller.go
package controllers

import (
	"errors"

	"github.com/Ashish12122003/Menumate-backend/entity"
	"github.com/Ashish12122003/Menumate-backend/pkg/resp"
	"github.com/Ashish12122003/Menumate-backend/services"
	"github.com/Ashish12122003/Menumate-backend/utils"
	"github.com/Ashish12122003/Menumate-backend/ws"

	"github.com/gin-gonic/gin"
)

type VendorOrderController struct {
	Orders *services.OrderService
	Hub    *ws.NotifyHub
}

func NewVendorOrderController(orders *services.OrderService, hub *ws.NotifyHub) *VendorOrderController {
	return &VendorOrderController{Orders: orders, Hub: hub}
}

// GET /api/vendor/shops/:shopId/orders?status=
func (ctl *VendorOrderController) ListForShop(c *gin.Context) {
	orders, err := ctl.Orders.ListForShop(utils.CurrentVendor(c), shopIDParam(c), c.Query("status"))
	if err != nil {
		serviceError(c, err, "Shop not found")
		return
	}
	resp.OKCount(c, len(orders), orders)
}

// ---------------- Actions ----------------

// PATCH /api/vendor/orders/:orderId/accept
func (ctl *VendorOrderController) Accept(c *gin.Context) {
	ctl.updateStatus(c, ctl.Orders.Accept)
}

// PATCH /api/vendor/orders/:orderId/ready
func (ctl *VendorOrderController) Ready(c *gin.Context) {
	ctl.updateStatus(c, ctl.Orders.Ready)
}

// PATCH /api/vendor/orders/:orderId/complete
func (ctl *VendorOrderController) Complete(c *gin.Context) {
	ctl.updateStatus(c, ctl.Orders.Complete)
}

// PATCH /api/vendor/orders/:orderId/cancel
func (ctl *VendorOrderController) Cancel(c *gin.Context) {
	ctl.updateStatus(c, ctl.Orders.Cancel)
}

func (ctl *VendorOrderController) updateStatus(c *gin.Context, action func(*entity.Vendor, uint) (*entity.Order, error)) {
	order, err := action(utils.CurrentVendor(c), orderIDParam(c))
	if err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			resp.BadRequest(c, "order is not in a state that allows this change")
			return
		}
		serviceError(c, err, "Order not found.")
		return
	}

	// best-effort pushes; the customer room only exists for non-guest orders
	statusEvent := gin.H{"orderId": order.ID, "status": order.Status}
	ctl.Hub.Publish(ws.ShopRoom(order.ShopID), "order_status_changed", statusEvent)
	if order.UserID != nil {
		ctl.Hub.Publish(ws.UserRoom(*order.UserID), "order_status_changed", statusEvent)
	}

	resp.OK(c, order)
}
