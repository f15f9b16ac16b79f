package services

import (
	"time"

	"github.com/parodie/restaurantBack/entity"
	"github.com/parodie/restaurantBack/repository"
)

type StatsService struct {
	Repo      *repository.StatsRepository
	OrderRepo *repository.OrderRepository
}

func NewStatsService(repo *repository.StatsRepository, orderRepo *repository.OrderRepository) *StatsService {
	return &StatsService{Repo: repo, OrderRepo: orderRepo}
}

// GenerateForDate rolls that day's served/cancelled orders into one stats
// row and upserts it by date. A day with no closed orders still gets a
// zeroed row. Re-running overwrites, never double-counts.
func (s *StatsService) GenerateForDate(date time.Time) (*entity.DailyStats, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	orders, err := s.OrderRepo.ClosedOrdersBetween(dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	stats := &entity.DailyStats{Date: dayStart.Format(entity.StatsDateLayout)}

	if len(orders) > 0 {
		var revenue int64
		var itemsSold int
		// Orders arrive in creation order; keeping a strict ">" makes the
		// earliest hour win peak-hour ties deterministically.
		hourCounts := [24]int{}
		peak := orders[0].CreatedAt.Hour()
		for _, o := range orders {
			revenue += o.TotalPrice
			itemsSold += o.ItemsCount
			h := o.CreatedAt.Hour()
			hourCounts[h]++
			if hourCounts[h] > hourCounts[peak] {
				peak = h
			}
		}
		stats.TotalOrders = len(orders)
		stats.TotalRevenue = revenue
		stats.ItemsSold = itemsSold
		stats.AverageOrderValue = revenue / int64(len(orders))
		stats.PeakHour = &peak
	}

	if err := s.Repo.Upsert(stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *StatsService) ForDate(date time.Time) (*entity.DailyStats, error) {
	row, err := s.Repo.FindByDate(date.Format(entity.StatsDateLayout))
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return row, nil
}

func (s *StatsService) Range(from, to time.Time) ([]entity.DailyStats, error) {
	return s.Repo.ListRange(
		from.Format(entity.StatsDateLayout),
		to.Format(entity.StatsDateLayout),
	)
}

type MonthlyStats struct {
	Period            string `json:"period"`
	TotalOrders       int    `json:"totalOrders"`
	TotalRevenue      int64  `json:"totalRevenue"`
	ItemsSold         int    `json:"itemsSold"`
	AverageOrderValue int64  `json:"averageOrderValue"`
}

// Monthly sums the stored daily rows for a month.
func (s *StatsService) Monthly(year int, month time.Month) (*MonthlyStats, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	rows, err := s.Repo.ListRange(
		first.Format(entity.StatsDateLayout),
		last.Format(entity.StatsDateLayout),
	)
	if err != nil {
		return nil, err
	}

	out := &MonthlyStats{Period: first.Format("2006-01")}
	for _, r := range rows {
		out.TotalOrders += r.TotalOrders
		out.TotalRevenue += r.TotalRevenue
		out.ItemsSold += r.ItemsSold
	}
	if out.TotalOrders > 0 {
		out.AverageOrderValue = out.TotalRevenue / int64(out.TotalOrders)
	}
	return out, nil
}
