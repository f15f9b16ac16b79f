package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	TableNum int `gorm:"uniqueIndex;not null" json:"tableNum"`
	Capacity int `gorm:"not null;default:4" json:"capacity"`

	// The tablet bound to this table. One device per table; nil means the
	// table has never been linked or was reset.
	DeviceID *string `gorm:"uniqueIndex" json:"-"`

	Active bool `gorm:"not null;default:true" json:"active"`

	Orders []Order `json:"-"`
}

// Linked reports whether a device is currently bound to the table. This is
// about provisioning, not occupancy; see TableService for availability.
func (t *Table) Linked() bool {
	return t.DeviceID != nil && *t.DeviceID != ""
}
