package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order lifecycle. pending → in_progress → ready → served, with cancelled
// as the alternate terminal. Who may move an order where lives in
// services/order_transitions.go.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusReady      = "ready"
	StatusServed     = "served"
	StatusCancelled  = "cancelled"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusReady, StatusServed, StatusCancelled:
		return true
	}
	return false
}

func TerminalStatus(s string) bool {
	return s == StatusServed || s == StatusCancelled
}

// OpenStatuses are the states that keep a table occupied.
var OpenStatuses = []string{StatusPending, StatusInProgress, StatusReady}

// ClosedStatuses feed expiry and the daily stats rollup.
var ClosedStatuses = []string{StatusServed, StatusCancelled}

type Order struct {
	gorm.Model
	TableID uint  `gorm:"not null" json:"tableId"`
	Table   Table `json:"-"`

	Status string `gorm:"not null;default:pending" json:"status"`

	// Derived from items; recomputed on every line mutation. Minor units.
	TotalPrice int64 `json:"totalPrice"`
	ItemsCount int   `json:"itemsCount"`

	// Stamped when the order reaches served or cancelled.
	CompletedAt *time.Time `json:"completedAt"`

	PreparedByID *uint `json:"preparedById"`
	PreparedBy   *User `json:"-"`
	ServedByID   *uint `json:"servedById"`
	ServedBy     *User `json:"-"`

	// Soft-archive flag: closed orders the table device no longer lists.
	Expired bool `gorm:"not null;default:false" json:"expired"`

	Items []OrderItem `json:"-"`
}
