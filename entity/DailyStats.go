package entity

import (
	"gorm.io/gorm"
)

// StatsDateLayout keys DailyStats rows by local calendar day.
const StatsDateLayout = "2006-01-02"

// DailyStats is one aggregated row per day, regenerated on demand.
// Rerunning the aggregation for a date overwrites the existing row.
type DailyStats struct {
	gorm.Model
	Date string `gorm:"uniqueIndex;not null" json:"date"`

	TotalOrders  int   `json:"totalOrders"`
	TotalRevenue int64 `json:"totalRevenue"`
	ItemsSold    int   `json:"itemsSold"`

	// TotalRevenue / TotalOrders, truncated. Minor units.
	AverageOrderValue int64 `json:"averageOrderValue"`

	// Hour (0-23) with the most closed orders; nil when the day had none.
	PeakHour *int `json:"peakHour"`
}
