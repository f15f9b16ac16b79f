package services

import (
	"time"

	"github.com/parodie/restaurantBack/entity"

	"gorm.io/gorm"
)

// allowedTargets is the role/status transition table:
//
//	current      waiter               chef                       admin
//	pending      cancelled            in_progress, cancelled     any
//	in_progress  -                    ready, cancelled           any
//	ready        served, cancelled    -                          any
//	terminal     -                    -                          any
func allowedTargets(current, role string) []string {
	if role == entity.RoleAdmin {
		return []string{
			entity.StatusPending, entity.StatusInProgress, entity.StatusReady,
			entity.StatusServed, entity.StatusCancelled,
		}
	}
	switch role {
	case entity.RoleWaiter:
		switch current {
		case entity.StatusPending:
			return []string{entity.StatusCancelled}
		case entity.StatusReady:
			return []string{entity.StatusServed, entity.StatusCancelled}
		}
	case entity.RoleChef:
		switch current {
		case entity.StatusPending:
			return []string{entity.StatusInProgress, entity.StatusCancelled}
		case entity.StatusInProgress:
			return []string{entity.StatusReady, entity.StatusCancelled}
		}
	}
	return nil
}

// Advance moves an order to target on behalf of a staff member. The change
// is persisted immediately, with the documented side effects:
// in_progress by a chef records the preparer, served by a waiter records the
// server and stamps completion, cancelled stamps completion.
func (s *OrderService) Advance(orderID, actorID uint, role, target string) (*entity.Order, error) {
	if !entity.ValidStatus(target) {
		return nil, ErrUnknownStatus
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return wrapNotFound(err)
		}

		if entity.TerminalStatus(o.Status) && role != entity.RoleAdmin {
			return ErrAlreadyTerminal
		}
		if !contains(allowedTargets(o.Status, role), target) {
			return ErrForbidden
		}

		updates := map[string]any{"status": target}
		switch target {
		case entity.StatusInProgress:
			if role == entity.RoleChef {
				updates["prepared_by_id"] = actorID
			}
		case entity.StatusServed:
			if role == entity.RoleWaiter {
				updates["served_by_id"] = actorID
			}
			updates["completed_at"] = time.Now()
		case entity.StatusCancelled:
			updates["completed_at"] = time.Now()
		}
		return s.Repo.UpdateOrder(tx, o.ID, updates)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrder(orderID)
}

// Cancel goes through the same role gating as Advance; there is no
// any-role override. Terminal orders report the conflict explicitly.
func (s *OrderService) Cancel(orderID, actorID uint, role string) (*entity.Order, error) {
	return s.Advance(orderID, actorID, role, entity.StatusCancelled)
}

// CancelByTable lets the ordering device back out of its own order, but only
// while the kitchen hasn't picked it up.
func (s *OrderService) CancelByTable(tableID, orderID uint) (*entity.Order, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderForTable(tableID, orderID)
		if err != nil {
			return wrapNotFound(err)
		}
		if entity.TerminalStatus(o.Status) {
			return ErrAlreadyTerminal
		}
		if o.Status != entity.StatusPending {
			return ErrNotCancellable
		}
		return s.Repo.UpdateOrder(tx, o.ID, map[string]any{
			"status":       entity.StatusCancelled,
			"completed_at": time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrder(orderID)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
