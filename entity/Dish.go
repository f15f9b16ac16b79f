package entity

import (
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Ingredients string `json:"ingredients"`

	// Minor units (cents). 12.99 is stored as 1299.
	Price int64 `gorm:"not null" json:"price"`

	// Unavailable dishes stay on the menu for admins but cannot be
	// ordered and are hidden from the client listing.
	Available bool `gorm:"not null;default:true" json:"available"`

	Categories []Category `gorm:"many2many:dish_categories" json:"categories,omitempty"`
}
