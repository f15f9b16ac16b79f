package services

import (
	"errors"
	"fmt"

	"github.com/parodie/restaurantBack/entity"
	"github.com/parodie/restaurantBack/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	DishRepo *repository.DishRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, dishRepo *repository.DishRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, DishRepo: dishRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	DishID   uint `json:"dishId" binding:"required"`
	Quantity int  `json:"quantity"`
}

// ----- Create -----

// Create places a new pending order for a table. The order row, every line
// item and the totals recompute commit as one transaction: the first unknown
// or unavailable dish rolls the whole thing back.
func (s *OrderService) Create(tableID uint, items []OrderItemIn) (*entity.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, ErrBadQuantity
		}
	}

	var order entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order = entity.Order{TableID: tableID, Status: entity.StatusPending}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range items {
			dish, err := s.DishRepo.FindAvailable(it.DishID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("dish %d: %w", it.DishID, ErrDishUnavailable)
				}
				return err
			}
			oi := entity.OrderItem{
				OrderID:  order.ID,
				DishID:   dish.ID,
				Quantity: it.Quantity,
				Price:    dish.Price, // snapshot, catalog changes don't follow
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		return s.Repo.RecomputeTotals(tx, order.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrder(order.ID)
}

// ----- Line items -----

// AddItem appends a line to a still-pending order owned by the table.
func (s *OrderService) AddItem(tableID, orderID uint, in OrderItemIn) (*entity.Order, error) {
	if in.Quantity < 1 {
		return nil, ErrBadQuantity
	}
	o, err := s.Repo.GetOrderForTable(tableID, orderID)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	if o.Status != entity.StatusPending {
		return nil, ErrNotModifiable
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		dish, err := s.DishRepo.FindAvailable(in.DishID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("dish %d: %w", in.DishID, ErrDishUnavailable)
			}
			return err
		}
		oi := entity.OrderItem{OrderID: o.ID, DishID: dish.ID, Quantity: in.Quantity, Price: dish.Price}
		if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
			return err
		}
		return s.Repo.RecomputeTotals(tx, o.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrder(o.ID)
}

// UpdateItemQuantity changes a line's quantity on a pending order.
func (s *OrderService) UpdateItemQuantity(tableID, orderID, itemID uint, qty int) (*entity.Order, error) {
	if qty < 1 {
		return nil, ErrBadQuantity
	}
	o, err := s.Repo.GetOrderForTable(tableID, orderID)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	if o.Status != entity.StatusPending {
		return nil, ErrNotModifiable
	}
	oi, err := s.Repo.GetOrderItem(o.ID, itemID)
	if err != nil {
		return nil, wrapNotFound(err)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(oi).Update("quantity", qty).Error; err != nil {
			return err
		}
		return s.Repo.RecomputeTotals(tx, o.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrder(o.ID)
}

// RemoveItem deletes a line from a pending order.
func (s *OrderService) RemoveItem(tableID, orderID, itemID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForTable(tableID, orderID)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	if o.Status != entity.StatusPending {
		return nil, ErrNotModifiable
	}
	oi, err := s.Repo.GetOrderItem(o.ID, itemID)
	if err != nil {
		return nil, wrapNotFound(err)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.DeleteOrderItem(tx, oi.ID); err != nil {
			return err
		}
		return s.Repo.RecomputeTotals(tx, o.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrder(o.ID)
}

// ----- List & Detail -----

func (s *OrderService) ListForTable(tableID uint) ([]entity.Order, error) {
	return s.Repo.ListForTable(tableID)
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForTable(tableID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForTable(tableID, orderID)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

func (s *OrderService) ListByStatus(status string, limit int) ([]entity.Order, error) {
	if status != "" && !entity.ValidStatus(status) {
		return nil, ErrUnknownStatus
	}
	return s.Repo.ListByStatus(status, limit)
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

// ----- Expiry -----

// ExpireClosed archives the table's served/cancelled orders from the device
// view. Safe to re-run; returns how many were flipped.
func (s *OrderService) ExpireClosed(tableID uint) (int64, error) {
	return s.Repo.ExpireClosed(tableID)
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
