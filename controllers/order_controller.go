// controllers/order_controller.go
package controllers

import (
	"errors"
	"strconv"

	"github.com/Ashish12122003/Menumate-backend/pkg/resp"
	"github.com/Ashish12122003/Menumate-backend/services"
	"github.com/Ashish12122003/Menumate-backend/utils"
	"github.com/Ashish12122003/Menumate-backend/ws"

	"github.com/gin-gonic/gin"
)

// OrderController is the customer-facing order surface. The notify hub is
// a constructor dependency; events are fire-and-forget.
type OrderController struct {
	Orders *services.OrderService
	Hub    *ws.NotifyHub
}

func NewOrderController(orders *services.OrderService, hub *ws.NotifyHub) *OrderController {
	return &OrderController{Orders: orders, Hub: hub}
}

func orderIDParam(c *gin.Context) uint {
	id, _ := strconv.ParseUint(c.Param("orderId"), 10, 64)
	return uint(id)
}

// POST /api/orders — authenticated customers and table guests alike.
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var userID *uint
	if id := utils.CurrentUserID(c); id != 0 {
		userID = &id
	}

	order, err := ctl.Orders.Create(userID, req)
	if err != nil {
		if errors.Is(err, services.ErrItemUnavailable) {
			resp.BadRequest(c, "one or more menu items are unavailable")
			return
		}
		serviceError(c, err, "Shop not found")
		return
	}

	ctl.Hub.Publish(ws.ShopRoom(order.ShopID), "new_order", order)

	resp.Created(c, "order placed", order)
}

// GET /api/orders/:orderId
func (ctl *OrderController) Detail(c *gin.Context) {
	order, err := ctl.Orders.GetForUser(orderIDParam(c), utils.CurrentUserID(c))
	if err != nil {
		serviceError(c, err, "Order not found.")
		return
	}
	resp.OK(c, order)
}

// GET /api/users/orders
func (ctl *OrderController) ListForMe(c *gin.Context) {
	orders, err := ctl.Orders.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKCount(c, len(orders), orders)
}
