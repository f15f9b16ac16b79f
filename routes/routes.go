package routes

import (
	"github.com/parodie/restaurantBack/configs"
	"github.com/parodie/restaurantBack/controllers"
	"github.com/parodie/restaurantBack/entity"
	"github.com/parodie/restaurantBack/middlewares"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg.JWTSecret, cfg.JWTTTL)
	adminCtrl := controllers.NewAdminController(db, cfg.JWTSecret, cfg.JWTTTL)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	staffCtrl := controllers.NewStaffOrderController(db)
	deviceCtrl := controllers.NewDeviceController(db, cfg.JWTSecret, cfg.DeviceTTL)

	staffAuth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(db, cfg.JWTSecret, roles...)
	}
	deviceAuth := middlewares.DeviceAuthMiddleware(db, cfg.JWTSecret)

	// Auth
	r.POST("/auth/login", authCtrl.Login)
	r.GET("/auth/me", staffAuth(), authCtrl.Me)

	// Device provisioning (the tablet has no credential yet)
	r.GET("/tables", deviceCtrl.LinkableTables)
	r.POST("/link-table", deviceCtrl.Link)

	// Table device
	client := r.Group("/client", deviceAuth)
	{
		client.GET("/verify-device", deviceCtrl.Verify)
		client.POST("/reset-table", deviceCtrl.Reset)

		client.GET("/categories", menuCtrl.ListCategories)
		client.GET("/categories/:id/dishes", menuCtrl.CategoryDishes)
		client.GET("/dishes", menuCtrl.ListDishes)
		client.GET("/dishes/search", menuCtrl.SearchDishes)

		client.POST("/orders", orderCtrl.Create)
		client.GET("/orders", orderCtrl.List)
		client.POST("/orders/expire", orderCtrl.Expire)
		client.GET("/orders/:id", orderCtrl.Detail)
		client.POST("/orders/:id/cancel", orderCtrl.Cancel)
		client.POST("/orders/:id/items", orderCtrl.AddItem)
		client.PATCH("/orders/:id/items/:itemId", orderCtrl.UpdateItem)
		client.DELETE("/orders/:id/items/:itemId", orderCtrl.RemoveItem)
	}

	// Kitchen
	chef := r.Group("/chef", staffAuth(entity.RoleChef))
	{
		chef.GET("/orders", staffCtrl.List)
		chef.GET("/orders/:id", staffCtrl.Detail)
		chef.POST("/orders/:id/in-progress", staffCtrl.MarkInProgress)
		chef.POST("/orders/:id/ready", staffCtrl.MarkReady)
		chef.POST("/orders/:id/cancel", staffCtrl.Cancel)
	}

	// Serving
	waiter := r.Group("/waiter", staffAuth(entity.RoleWaiter))
	{
		waiter.GET("/orders", staffCtrl.List)
		waiter.GET("/orders/:id", staffCtrl.Detail)
		waiter.POST("/orders/:id/served", staffCtrl.MarkServed)
		waiter.POST("/orders/:id/cancel", staffCtrl.Cancel)
	}

	// Admin
	admin := r.Group("/admin", staffAuth(entity.RoleAdmin))
	{
		admin.POST("/users", adminCtrl.CreateUser)
		admin.GET("/users", adminCtrl.ListUsers)
		admin.PATCH("/users/:id", adminCtrl.UpdateUser)
		admin.PATCH("/users/:id/password", adminCtrl.ChangePassword)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)

		admin.POST("/tables", adminCtrl.CreateTable)
		admin.GET("/tables", adminCtrl.ListTables)
		admin.PATCH("/tables/:id", adminCtrl.UpdateTable)
		admin.DELETE("/tables/:id", adminCtrl.DeleteTable)

		admin.POST("/categories", menuCtrl.CreateCategory)
		admin.GET("/categories", menuCtrl.ListCategories)
		admin.PATCH("/categories/:id", menuCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", menuCtrl.DeleteCategory)

		admin.POST("/dishes", menuCtrl.CreateDish)
		admin.GET("/dishes", menuCtrl.AdminListDishes)
		admin.PATCH("/dishes/:id", menuCtrl.UpdateDish)
		admin.PATCH("/dishes/:id/availability", menuCtrl.ToggleDish)
		admin.DELETE("/dishes/:id", menuCtrl.DeleteDish)

		admin.GET("/orders", adminCtrl.ListOrders)
		admin.GET("/orders/:id", adminCtrl.OrderDetail)
		admin.PATCH("/orders/:id/status", adminCtrl.SetOrderStatus)

		admin.GET("/stats", adminCtrl.ListStats)
		admin.GET("/stats/monthly", adminCtrl.MonthlyStats)
		admin.POST("/stats/generate", adminCtrl.GenerateStats)
	}
}
