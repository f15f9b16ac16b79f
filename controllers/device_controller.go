package controllers

import (
	"time"

	"github.com/parodie/restaurantBack/pkg/resp"
	"github.com/parodie/restaurantBack/repository"
	"github.com/parodie/restaurantBack/services"
	"github.com/parodie/restaurantBack/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeviceController handles tablet provisioning: which tables can be linked,
// linking itself, verification and reset.
type DeviceController struct {
	Devices *services.DeviceService
	Tables  *services.TableService
}

func NewDeviceController(db *gorm.DB, secret string, deviceTTL time.Duration) *DeviceController {
	tableRepo := repository.NewTableRepository(db)
	return &DeviceController{
		Devices: services.NewDeviceService(tableRepo, secret, deviceTTL),
		Tables:  services.NewTableService(tableRepo),
	}
}

// GET /tables lists provisioning candidates: active tables with no device yet.
// Deliberately NOT the open-order availability predicate.
func (dc *DeviceController) LinkableTables(c *gin.Context) {
	tables, err := dc.Tables.ListLinkable()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": tables})
}

type LinkReq struct {
	TableNum int `json:"tableNum" binding:"required,min=1"`
}

// POST /link-table: binds a fresh device id and returns the signed token.
func (dc *DeviceController) Link(c *gin.Context) {
	var req LinkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	result, err := dc.Devices.Link(req.TableNum)
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.Created(c, result)
}

// GET /client/verify-device: succeeding at all means the token resolved.
func (dc *DeviceController) Verify(c *gin.Context) {
	table := utils.CurrentTable(c)
	available, err := dc.Tables.IsAvailable(table.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"tableNum":  table.TableNum,
		"capacity":  table.Capacity,
		"available": available,
	})
}

// POST /client/reset-table: clears the binding; the presented token stops
// working the moment the row no longer matches it.
func (dc *DeviceController) Reset(c *gin.Context) {
	table := utils.CurrentTable(c)
	if err := dc.Devices.Reset(table); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "table reset"})
}
