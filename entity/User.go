package entity

import (
	"gorm.io/gorm"
)

// Staff roles. Kept as a plain string column; each endpoint declares the
// exact role it requires, admin gets no implicit chef/waiter access.
const (
	RoleAdmin  = "admin"
	RoleChef   = "chef"
	RoleWaiter = "waiter"
)

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleChef || role == RoleWaiter
}

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:chef" json:"role"`

	// Soft delete: deactivated staff keep their rows (order attribution)
	// but fail every auth check.
	Active bool `gorm:"not null;default:true" json:"active"`

	PreparedOrders []Order `gorm:"foreignKey:PreparedByID" json:"-"`
	ServedOrders   []Order `gorm:"foreignKey:ServedByID" json:"-"`
}
