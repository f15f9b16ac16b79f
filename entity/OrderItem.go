package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"not null" json:"orderId"`
	Order   Order `json:"-"`

	DishID uint `gorm:"not null" json:"dishId"`
	Dish   Dish `json:"-"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`

	// Unit price snapshotted at order time; catalog price changes later
	// never touch existing orders. Minor units.
	Price int64 `gorm:"not null" json:"price"`
}

func (oi *OrderItem) LineTotal() int64 {
	return oi.Price * int64(oi.Quantity)
}
