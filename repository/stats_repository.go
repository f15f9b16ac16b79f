package repository

import (
	"errors"

	"github.com/parodie/restaurantBack/entity"

	"gorm.io/gorm"
)

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

// Upsert replaces the row for s.Date wholesale; regeneration never
// double-counts.
func (r *StatsRepository) Upsert(s *entity.DailyStats) error {
	var existing entity.DailyStats
	err := r.DB.Where("date = ?", s.Date).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(s).Error
	}
	if err != nil {
		return err
	}
	s.ID = existing.ID
	s.CreatedAt = existing.CreatedAt
	return r.DB.Save(s).Error
}

func (r *StatsRepository) FindByDate(date string) (*entity.DailyStats, error) {
	var s entity.DailyStats
	if err := r.DB.Where("date = ?", date).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StatsRepository) ListRange(from, to string) ([]entity.DailyStats, error) {
	var rows []entity.DailyStats
	err := r.DB.Where("date >= ? AND date <= ?", from, to).
		Order("date").Find(&rows).Error
	return rows, err
}
