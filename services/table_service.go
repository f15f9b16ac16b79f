package services

import (
	"github.com/parodie/restaurantBack/entity"
	"github.com/parodie/restaurantBack/repository"
)

type TableService struct {
	Repo *repository.TableRepository
}

func NewTableService(repo *repository.TableRepository) *TableService {
	return &TableService{Repo: repo}
}

// IsAvailable means the table has no open orders. This is NOT the same as
// being linkable (no bound device); callers depend on both meanings, so the
// two predicates stay separate.
func (s *TableService) IsAvailable(tableID uint) (bool, error) {
	count, err := s.Repo.CountOpenOrders(tableID)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

type TableStatus struct {
	ID        uint `json:"id"`
	TableNum  int  `json:"tableNum"`
	Capacity  int  `json:"capacity"`
	Active    bool `json:"active"`
	Linked    bool `json:"linked"`
	Available bool `json:"available"`
}

// ListAvailability decorates every table with its derived availability.
func (s *TableService) ListAvailability() ([]TableStatus, error) {
	tables, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]TableStatus, 0, len(tables))
	for _, t := range tables {
		available, err := s.IsAvailable(t.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, TableStatus{
			ID: t.ID, TableNum: t.TableNum, Capacity: t.Capacity,
			Active: t.Active, Linked: t.Linked(), Available: available,
		})
	}
	return out, nil
}

// ListLinkable returns provisioning candidates: active tables without a
// bound device.
func (s *TableService) ListLinkable() ([]entity.Table, error) {
	return s.Repo.ListUnlinked()
}
