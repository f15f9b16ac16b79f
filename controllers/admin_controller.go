package controllers

import (
	"strconv"
	"time"

	"github.com/parodie/restaurantBack/entity"
	"github.com/parodie/restaurantBack/pkg/resp"
	"github.com/parodie/restaurantBack/repository"
	"github.com/parodie/restaurantBack/services"
	"github.com/parodie/restaurantBack/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminController covers staff accounts, table CRUD, order overrides and the
// daily statistics endpoints. Everything here sits behind role=admin.
type AdminController struct {
	DB     *gorm.DB
	Auth   *services.AuthService
	Orders *services.OrderService
	Tables *services.TableService
	Stats  *services.StatsService
}

func NewAdminController(db *gorm.DB, secret string, ttl time.Duration) *AdminController {
	orderRepo := repository.NewOrderRepository(db)
	return &AdminController{
		DB:     db,
		Auth:   services.NewAuthService(repository.NewUserRepository(db), secret, ttl),
		Orders: services.NewOrderService(db, orderRepo, repository.NewDishRepository(db)),
		Tables: services.NewTableService(repository.NewTableRepository(db)),
		Stats:  services.NewStatsService(repository.NewStatsRepository(db), orderRepo),
	}
}

// ===== Staff accounts =====

type RegisterReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

// POST /admin/users
func (ac *AdminController) CreateUser(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := ac.Auth.Register(req.Username, req.Password, req.Role)
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.Created(c, user)
}

// GET /admin/users?role=
func (ac *AdminController) ListUsers(c *gin.Context) {
	users, err := ac.Auth.ListStaff(c.Query("role"))
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users})
}

type UserUpdateReq struct {
	Username *string `json:"username"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
}

// PATCH /admin/users/:id
func (ac *AdminController) UpdateUser(c *gin.Context) {
	id := pathID(c, "id")
	var req UserUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updates := map[string]any{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	user, err := ac.Auth.UpdateUser(id, updates)
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, user)
}

type ChangePasswordReq struct {
	Password string `json:"password" binding:"required,min=6"`
}

// PATCH /admin/users/:id/password
func (ac *AdminController) ChangePassword(c *gin.Context) {
	id := pathID(c, "id")
	var req ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ac.Auth.ChangePassword(id, req.Password); err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "password updated"})
}

// DELETE /admin/users/:id: soft delete, the row stays for attribution.
func (ac *AdminController) DeleteUser(c *gin.Context) {
	if err := ac.Auth.Deactivate(pathID(c, "id")); err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "user deactivated"})
}

// ===== Tables =====

type TableIn struct {
	TableNum int   `json:"tableNum" binding:"required,min=1"`
	Capacity int   `json:"capacity" binding:"omitempty,min=1"`
	Active   *bool `json:"active"`
}

// POST /admin/tables
func (ac *AdminController) CreateTable(c *gin.Context) {
	var req TableIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t := entity.Table{TableNum: req.TableNum, Capacity: req.Capacity, Active: true}
	if t.Capacity == 0 {
		t.Capacity = 4
	}
	if req.Active != nil {
		t.Active = *req.Active
	}
	if err := ac.Tables.Repo.Create(&t); err != nil {
		resp.Conflict(c, "table number already exists")
		return
	}
	resp.Created(c, t)
}

// GET /admin/tables: every table with its derived availability.
func (ac *AdminController) ListTables(c *gin.Context) {
	tables, err := ac.Tables.ListAvailability()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": tables})
}

type TableUpdateReq struct {
	Capacity *int  `json:"capacity"`
	Active   *bool `json:"active"`
}

// PATCH /admin/tables/:id
func (ac *AdminController) UpdateTable(c *gin.Context) {
	id := pathID(c, "id")
	var req TableUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updates := map[string]any{}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if _, err := ac.Tables.Repo.FindByID(id); err != nil {
		resp.NotFound(c, "table not found")
		return
	}
	if err := ac.Tables.Repo.Update(id, updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	t, _ := ac.Tables.Repo.FindByID(id)
	resp.OK(c, t)
}

// DELETE /admin/tables/:id
func (ac *AdminController) DeleteTable(c *gin.Context) {
	id := pathID(c, "id")
	if _, err := ac.Tables.Repo.FindByID(id); err != nil {
		resp.NotFound(c, "table not found")
		return
	}
	if err := ac.Tables.Repo.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "table deleted"})
}

// ===== Orders (admin override) =====

// GET /admin/orders?status=&limit=
func (ac *AdminController) ListOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := ac.Orders.ListByStatus(c.Query("status"), limit)
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /admin/orders/:id
func (ac *AdminController) OrderDetail(c *gin.Context) {
	detail, err := ac.Orders.Detail(pathID(c, "id"))
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, detail)
}

type StatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /admin/orders/:id/status: the admin override path, any status from
// any status, including reopening a terminal order.
func (ac *AdminController) SetOrderStatus(c *gin.Context) {
	var req StatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := ac.Orders.Advance(pathID(c, "id"), utils.CurrentUserID(c), entity.RoleAdmin, req.Status)
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, order)
}

// ===== Stats =====

// POST /admin/stats/generate?date=2006-01-02 (defaults to today)
func (ac *AdminController) GenerateStats(c *gin.Context) {
	date := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.ParseInLocation(entity.StatsDateLayout, d, time.Local)
		if err != nil {
			resp.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}
	stats, err := ac.Stats.GenerateForDate(date)
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /admin/stats?from=&to= (defaults to the last 7 days)
func (ac *AdminController) ListStats(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(0, 0, -7)
	var err error
	if d := c.Query("from"); d != "" {
		if from, err = time.ParseInLocation(entity.StatsDateLayout, d, time.Local); err != nil {
			resp.BadRequest(c, "from must be YYYY-MM-DD")
			return
		}
	}
	if d := c.Query("to"); d != "" {
		if to, err = time.ParseInLocation(entity.StatsDateLayout, d, time.Local); err != nil {
			resp.BadRequest(c, "to must be YYYY-MM-DD")
			return
		}
	}
	rows, err := ac.Stats.Range(from, to)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rows})
}

// GET /admin/stats/monthly?year=&month=
func (ac *AdminController) MonthlyStats(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		resp.BadRequest(c, "year is required")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		resp.BadRequest(c, "month must be 1-12")
		return
	}
	out, err := ac.Stats.Monthly(year, time.Month(month))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

func pathID(c *gin.Context, name string) uint {
	id, _ := strconv.Atoi(c.Param(name))
	return uint(id)
}
