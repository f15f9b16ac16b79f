package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/parodie/restaurantBack/entity"
	"github.com/parodie/restaurantBack/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB gives each test an isolated in-memory database. The DSN is
// keyed by test name so parallel tests never share state.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{}, &entity.Table{},
		&entity.Category{}, &entity.Dish{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.DailyStats{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewDishRepository(db))
}

func seedTable(t *testing.T, db *gorm.DB, num int) *entity.Table {
	t.Helper()
	table := &entity.Table{TableNum: num, Capacity: 4, Active: true}
	if err := db.Create(table).Error; err != nil {
		t.Fatalf("seed table %d: %v", num, err)
	}
	return table
}

func seedDish(t *testing.T, db *gorm.DB, name string, price int64, available bool) *entity.Dish {
	t.Helper()
	dish := &entity.Dish{Name: name, Price: price, Available: available}
	if err := db.Create(dish).Error; err != nil {
		t.Fatalf("seed dish %s: %v", name, err)
	}
	return dish
}

func seedStaff(t *testing.T, db *gorm.DB, username, role string) *entity.User {
	t.Helper()
	user := &entity.User{Username: username, Password: "x", Role: role, Active: true}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed staff %s: %v", username, err)
	}
	return user
}

func seedOrder(t *testing.T, db *gorm.DB, tableID uint, status string) *entity.Order {
	t.Helper()
	order := &entity.Order{TableID: tableID, Status: status}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func countOrders(t *testing.T, db *gorm.DB, tableID uint) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&entity.Order{}).Where("table_id = ?", tableID).Count(&count).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	return count
}
