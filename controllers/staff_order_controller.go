package controllers

import (
	"strconv"

	"github.com/parodie/restaurantBack/entity"
	"github.com/parodie/restaurantBack/pkg/resp"
	"github.com/parodie/restaurantBack/repository"
	"github.com/parodie/restaurantBack/services"
	"github.com/parodie/restaurantBack/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StaffOrderController is the kitchen/serving side. Role enforcement happens
// twice: the route group requires the exact role, and the transition table
// in the service rejects role/status pairs it doesn't list.
type StaffOrderController struct {
	Orders *services.OrderService
}

func NewStaffOrderController(db *gorm.DB) *StaffOrderController {
	return &StaffOrderController{
		Orders: services.NewOrderService(db,
			repository.NewOrderRepository(db),
			repository.NewDishRepository(db)),
	}
}

// GET /chef/orders, /waiter/orders: queue view, optional ?status= filter.
func (sc *StaffOrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := sc.Orders.ListByStatus(c.Query("status"), limit)
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /chef/orders/:id, /waiter/orders/:id
func (sc *StaffOrderController) Detail(c *gin.Context) {
	detail, err := sc.Orders.Detail(pathID(c, "id"))
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, detail)
}

func (sc *StaffOrderController) advance(c *gin.Context, target string) {
	order, err := sc.Orders.Advance(pathID(c, "id"), utils.CurrentUserID(c), utils.CurrentRole(c), target)
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /chef/orders/:id/in-progress: also records the chef as preparer.
func (sc *StaffOrderController) MarkInProgress(c *gin.Context) {
	sc.advance(c, entity.StatusInProgress)
}

// POST /chef/orders/:id/ready
func (sc *StaffOrderController) MarkReady(c *gin.Context) {
	sc.advance(c, entity.StatusReady)
}

// POST /waiter/orders/:id/served: records the waiter and completion time.
func (sc *StaffOrderController) MarkServed(c *gin.Context) {
	sc.advance(c, entity.StatusServed)
}

// POST /chef/orders/:id/cancel, /waiter/orders/:id/cancel: same role
// gating as any other transition, no blanket override.
func (sc *StaffOrderController) Cancel(c *gin.Context) {
	order, err := sc.Orders.Cancel(pathID(c, "id"), utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, order)
}
