package services

import (
	"errors"
	"testing"

	"github.com/parodie/restaurantBack/entity"
)

func TestCreateOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	table := seedTable(t, db, 5)
	pasta := seedDish(t, db, "Pasta", 1299, true)

	order, err := svc.Create(table.ID, []OrderItemIn{{DishID: pasta.ID, Quantity: 2}})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if order.Status != entity.StatusPending {
		t.Errorf("status = %q, want %q", order.Status, entity.StatusPending)
	}
	if order.TotalPrice != 2598 {
		t.Errorf("total = %d, want 2598", order.TotalPrice)
	}
	if order.ItemsCount != 2 {
		t.Errorf("items count = %d, want 2", order.ItemsCount)
	}

	items, err := svc.Repo.GetOrderItems(order.ID)
	if err != nil {
		t.Fatalf("get items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].Price != 1299 {
		t.Errorf("snapshot price = %d, want 1299", items[0].Price)
	}
}

func TestCreateOrderEmptyItems(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	table := seedTable(t, db, 1)

	_, err := svc.Create(table.ID, nil)
	if !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("err = %v, want ErrEmptyOrder", err)
	}
	if n := countOrders(t, db, table.ID); n != 0 {
		t.Errorf("orders persisted = %d, want 0", n)
	}
}

func TestCreateOrderBadQuantity(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	table := seedTable(t, db, 1)
	dish := seedDish(t, db, "Soup", 500, true)

	_, err := svc.Create(table.ID, []OrderItemIn{{DishID: dish.ID, Quantity: 0}})
	if !errors.Is(err, ErrBadQuantity) {
		t.Fatalf("err = %v, want ErrBadQuantity", err)
	}
}

// An unavailable dish in the middle of the list must roll back the whole
// order: no order row, no sibling item rows.
func TestCreateOrderRollsBackOnUnavailableDish(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	table := seedTable(t, db, 2)
	ok1 := seedDish(t, db, "Salad", 700, true)
	bad := seedDish(t, db, "Oyster", 2500, false)
	ok2 := seedDish(t, db, "Bread", 300, true)

	_, err := svc.Create(table.ID, []OrderItemIn{
		{DishID: ok1.ID, Quantity: 1},
		{DishID: bad.ID, Quantity: 1},
		{DishID: ok2.ID, Quantity: 1},
	})
	if !errors.Is(err, ErrDishUnavailable) {
		t.Fatalf("err = %v, want ErrDishUnavailable", err)
	}

	if n := countOrders(t, db, table.ID); n != 0 {
		t.Errorf("orders persisted = %d, want 0", n)
	}
	var itemCount int64
	db.Model(&entity.OrderItem{}).Count(&itemCount)
	if itemCount != 0 {
		t.Errorf("order items persisted = %d, want 0", itemCount)
	}
}

func TestCreateOrderUnknownDish(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	table := seedTable(t, db, 3)

	_, err := svc.Create(table.ID, []OrderItemIn{{DishID: 9999, Quantity: 1}})
	if !errors.Is(err, ErrDishUnavailable) {
		t.Fatalf("err = %v, want ErrDishUnavailable", err)
	}
	if n := countOrders(t, db, table.ID); n != 0 {
		t.Errorf("orders persisted = %d, want 0", n)
	}
}

func TestRecomputeTotals(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	table := seedTable(t, db, 4)
	pasta := seedDish(t, db, "Pasta", 1299, true)
	soup := seedDish(t, db, "Soup", 500, true)

	// lines (qty 2 @ 12.99) and (qty 1 @ 5.00) → 30.98 total, 3 items
	order, err := svc.Create(table.ID, []OrderItemIn{
		{DishID: pasta.ID, Quantity: 2},
		{DishID: soup.ID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.TotalPrice != 3098 {
		t.Errorf("total = %d, want 3098", order.TotalPrice)
	}
	if order.ItemsCount != 3 {
		t.Errorf("items count = %d, want 3", order.ItemsCount)
	}
}

func TestLineItemMutationsRecomputeTotals(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	table := seedTable(t, db, 6)
	pasta := seedDish(t, db, "Pasta", 1299, true)
	soup := seedDish(t, db, "Soup", 500, true)

	order, err := svc.Create(table.ID, []OrderItemIn{{DishID: pasta.ID, Quantity: 1}})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	order, err = svc.AddItem(table.ID, order.ID, OrderItemIn{DishID: soup.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if order.TotalPrice != 1299+1000 {
		t.Errorf("total after add = %d, want 2299", order.TotalPrice)
	}

	items, _ := svc.Repo.GetOrderItems(order.ID)
	order, err = svc.UpdateItemQuantity(table.ID, order.ID, items[1].ID, 1)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if order.TotalPrice != 1299+500 {
		t.Errorf("total after update = %d, want 1799", order.TotalPrice)
	}

	order, err = svc.RemoveItem(table.ID, order.ID, items[0].ID)
	if err != nil {
		t.Fatalf("remove item: %v", err)
	}
	if order.TotalPrice != 500 || order.ItemsCount != 1 {
		t.Errorf("after remove: total = %d items = %d, want 500/1", order.TotalPrice, order.ItemsCount)
	}
}

func TestLineItemMutationRejectedOnceInProgress(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	table := seedTable(t, db, 7)
	dish := seedDish(t, db, "Pasta", 1299, true)

	order, err := svc.Create(table.ID, []OrderItemIn{{DishID: dish.ID, Quantity: 1}})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := db.Model(&entity.Order{}).Where("id = ?", order.ID).
		Update("status", entity.StatusInProgress).Error; err != nil {
		t.Fatalf("force status: %v", err)
	}

	_, err = svc.AddItem(table.ID, order.ID, OrderItemIn{DishID: dish.ID, Quantity: 1})
	if !errors.Is(err, ErrNotModifiable) {
		t.Fatalf("err = %v, want ErrNotModifiable", err)
	}
}

func TestExpireClosedOrders(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	table := seedTable(t, db, 8)

	seedOrder(t, db, table.ID, entity.StatusServed)
	seedOrder(t, db, table.ID, entity.StatusCancelled)
	open := seedOrder(t, db, table.ID, entity.StatusPending)

	count, err := svc.ExpireClosed(table.ID)
	if err != nil {
		t.Fatalf("expire: %v", err)
	}
	if count != 2 {
		t.Errorf("expired = %d, want 2", count)
	}

	// idempotent: nothing left to expire
	count, err = svc.ExpireClosed(table.ID)
	if err != nil {
		t.Fatalf("expire again: %v", err)
	}
	if count != 0 {
		t.Errorf("second run expired = %d, want 0", count)
	}

	// the open order is untouched and still listed
	orders, err := svc.ListForTable(table.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != open.ID {
		t.Errorf("device view = %d orders, want only the open one", len(orders))
	}
}

func TestDetailForTableScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	mine := seedTable(t, db, 9)
	other := seedTable(t, db, 10)
	order := seedOrder(t, db, other.ID, entity.StatusPending)

	_, err := svc.DetailForTable(mine.ID, order.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
