package controllers

import (
	"github.com/parodie/restaurantBack/pkg/resp"
	"github.com/parodie/restaurantBack/repository"
	"github.com/parodie/restaurantBack/services"
	"github.com/parodie/restaurantBack/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderController is the table-device side of ordering. Every handler runs
// behind the device middleware, so utils.CurrentTable is always set.
type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		Orders: services.NewOrderService(db,
			repository.NewOrderRepository(db),
			repository.NewDishRepository(db)),
	}
}

type CreateOrderReq struct {
	Items []services.OrderItemIn `json:"items"`
}

// POST /client/orders
func (oc *OrderController) Create(c *gin.Context) {
	table := utils.CurrentTable(c)

	var req CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// Missing quantity means one of that dish.
	for i := range req.Items {
		if req.Items[i].Quantity == 0 {
			req.Items[i].Quantity = 1
		}
	}

	order, err := oc.Orders.Create(table.ID, req.Items)
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.Created(c, gin.H{
		"orderId":    order.ID,
		"status":     order.Status,
		"totalPrice": order.TotalPrice,
		"itemsCount": order.ItemsCount,
	})
}

// GET /client/orders: own orders, expired ones hidden.
func (oc *OrderController) List(c *gin.Context) {
	table := utils.CurrentTable(c)
	orders, err := oc.Orders.ListForTable(table.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /client/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	table := utils.CurrentTable(c)
	detail, err := oc.Orders.DetailForTable(table.ID, pathID(c, "id"))
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, detail)
}

// POST /client/orders/:id/cancel: only while the kitchen hasn't started.
func (oc *OrderController) Cancel(c *gin.Context) {
	table := utils.CurrentTable(c)
	order, err := oc.Orders.CancelByTable(table.ID, pathID(c, "id"))
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /client/orders/:id/items
func (oc *OrderController) AddItem(c *gin.Context) {
	table := utils.CurrentTable(c)
	var req services.OrderItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	order, err := oc.Orders.AddItem(table.ID, pathID(c, "id"), req)
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, order)
}

type ItemQuantityReq struct {
	Quantity int `json:"quantity" binding:"required"`
}

// PATCH /client/orders/:id/items/:itemId
func (oc *OrderController) UpdateItem(c *gin.Context) {
	table := utils.CurrentTable(c)
	var req ItemQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Orders.UpdateItemQuantity(table.ID, pathID(c, "id"), pathID(c, "itemId"), req.Quantity)
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /client/orders/:id/items/:itemId
func (oc *OrderController) RemoveItem(c *gin.Context) {
	table := utils.CurrentTable(c)
	order, err := oc.Orders.RemoveItem(table.ID, pathID(c, "id"), pathID(c, "itemId"))
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /client/orders/expire: archive finished orders from the device view.
func (oc *OrderController) Expire(c *gin.Context) {
	table := utils.CurrentTable(c)
	count, err := oc.Orders.ExpireClosed(table.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"expired": count})
}
