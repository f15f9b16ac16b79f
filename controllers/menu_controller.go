package controllers

import (
	"github.com/parodie/restaurantBack/pkg/resp"
	"github.com/parodie/restaurantBack/repository"
	"github.com/parodie/restaurantBack/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MenuController serves both sides of the catalog: admin CRUD and the
// device-facing browse/search endpoints (available dishes only).
type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{Menu: services.NewMenuService(repository.NewDishRepository(db))}
}

// ===== Admin: categories =====

type CategoryIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// POST /admin/categories
func (mc *MenuController) CreateCategory(c *gin.Context) {
	var req CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := mc.Menu.CreateCategory(req.Name, req.Description)
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /admin/categories/:id
func (mc *MenuController) UpdateCategory(c *gin.Context) {
	var req CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := mc.Menu.UpdateCategory(pathID(c, "id"), map[string]any{
		"name": req.Name, "description": req.Description,
	})
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /admin/categories/:id
func (mc *MenuController) DeleteCategory(c *gin.Context) {
	if err := mc.Menu.DeleteCategory(pathID(c, "id")); err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category deleted"})
}

// ===== Admin: dishes =====

// POST /admin/dishes
func (mc *MenuController) CreateDish(c *gin.Context) {
	var req services.DishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dish, err := mc.Menu.CreateDish(&req)
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.Created(c, dish)
}

type DishUpdateReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Ingredients *string `json:"ingredients"`
	Price       *int64  `json:"price"`
	Available   *bool   `json:"available"`
}

// PATCH /admin/dishes/:id
func (mc *MenuController) UpdateDish(c *gin.Context) {
	var req DishUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Ingredients != nil {
		updates["ingredients"] = *req.Ingredients
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	dish, err := mc.Menu.UpdateDish(pathID(c, "id"), updates)
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, dish)
}

// PATCH /admin/dishes/:id/availability
func (mc *MenuController) ToggleDish(c *gin.Context) {
	dish, err := mc.Menu.ToggleAvailability(pathID(c, "id"))
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, dish)
}

// DELETE /admin/dishes/:id
func (mc *MenuController) DeleteDish(c *gin.Context) {
	if err := mc.Menu.DeleteDish(pathID(c, "id")); err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "dish deleted"})
}

// GET /admin/dishes
func (mc *MenuController) AdminListDishes(c *gin.Context) {
	dishes, err := mc.Menu.ListDishes(false)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": dishes})
}

// ===== Client browse (device-authenticated) =====

// GET /client/categories
func (mc *MenuController) ListCategories(c *gin.Context) {
	cats, err := mc.Menu.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// GET /client/categories/:id/dishes: available dishes only.
func (mc *MenuController) CategoryDishes(c *gin.Context) {
	dishes, err := mc.Menu.DishesInCategory(pathID(c, "id"), true)
	if err != nil {
		writeServiceErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": dishes})
}

// GET /client/dishes
func (mc *MenuController) ListDishes(c *gin.Context) {
	dishes, err := mc.Menu.ListDishes(true)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": dishes})
}

// GET /client/dishes/search?q=
func (mc *MenuController) SearchDishes(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		resp.BadRequest(c, "query param 'q' is required")
		return
	}
	dishes, err := mc.Menu.SearchDishes(q)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": dishes})
}
