package repository

import (
	"time"

	"github.com/parodie/restaurantBack/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

// Create helpers take the tx so order + items + totals commit or roll back
// as one unit.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderForTable scopes lookup to the owning table (device requests).
func (r *OrderRepository) GetOrderForTable(tableID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND table_id = ?", orderID, tableID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

func (r *OrderRepository) GetOrderItem(orderID, itemID uint) (*entity.OrderItem, error) {
	var oi entity.OrderItem
	err := r.DB.Where("id = ? AND order_id = ?", itemID, orderID).First(&oi).Error
	if err != nil {
		return nil, err
	}
	return &oi, nil
}

// ListForTable is what the table device sees: its own orders, expired ones
// hidden.
func (r *OrderRepository) ListForTable(tableID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("table_id = ? AND expired = ?", tableID, false).
		Order("id DESC").Find(&orders).Error
	return orders, err
}

// ListByStatus backs the staff queues. Empty status returns everything.
func (r *OrderRepository) ListByStatus(status string, limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var orders []entity.Order
	q := r.DB.Order("id").Limit(limit)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&orders).Error
	return orders, err
}

// UpdateOrder applies transition side effects inside the caller's tx.
func (r *OrderRepository) UpdateOrder(tx *gorm.DB, orderID uint, updates map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

// RecomputeTotals re-derives total_price and items_count from the line items.
// Side-effect only; runs in the same tx as the mutation that triggered it.
func (r *OrderRepository) RecomputeTotals(tx *gorm.DB, orderID uint) error {
	var items []entity.OrderItem
	if err := tx.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return err
	}
	var total int64
	var count int
	for _, it := range items {
		total += it.LineTotal()
		count += it.Quantity
	}
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Updates(map[string]any{"total_price": total, "items_count": count}).Error
}

// ExpireClosed soft-archives a table's finished orders. Idempotent: returns
// 0 when nothing matches.
func (r *OrderRepository) ExpireClosed(tableID uint) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("table_id = ? AND status IN ? AND expired = ?", tableID, entity.ClosedStatuses, false).
		Update("expired", true)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) DeleteOrderItem(tx *gorm.DB, itemID uint) error {
	return tx.Delete(&entity.OrderItem{}, itemID).Error
}

// ClosedOrdersBetween feeds the daily stats rollup: served/cancelled orders
// created inside [from, to), oldest first so peak-hour ties stay stable.
func (r *OrderRepository) ClosedOrdersBetween(from, to time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("status IN ? AND created_at >= ? AND created_at < ?",
		entity.ClosedStatuses, from, to).
		Order("created_at").Find(&orders).Error
	return orders, err
}
