package services

import (
	"testing"

	"github.com/parodie/restaurantBack/entity"
	"github.com/parodie/restaurantBack/repository"
)

func TestIsAvailable(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTableService(repository.NewTableRepository(db))
	table := seedTable(t, db, 1)

	available, err := svc.IsAvailable(table.ID)
	if err != nil {
		t.Fatalf("is available: %v", err)
	}
	if !available {
		t.Error("fresh table should be available")
	}

	order := seedOrder(t, db, table.ID, entity.StatusInProgress)
	if available, _ = svc.IsAvailable(table.ID); available {
		t.Error("table with an open order should not be available")
	}

	// closed orders don't occupy the table
	if err := db.Model(order).Update("status", entity.StatusServed).Error; err != nil {
		t.Fatalf("close order: %v", err)
	}
	if available, _ = svc.IsAvailable(table.ID); !available {
		t.Error("table with only closed orders should be available")
	}
}

// Availability (no open orders) and linkability (no bound device) are
// different predicates; a busy table can be linkable and vice versa.
func TestLinkableIsNotAvailability(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewTableRepository(db)
	svc := NewTableService(repo)

	busy := seedTable(t, db, 1) // open order, no device
	seedOrder(t, db, busy.ID, entity.StatusPending)

	idle := seedTable(t, db, 2) // no orders, device bound
	deviceID := "abc"
	if err := repo.SetDevice(idle.ID, &deviceID); err != nil {
		t.Fatalf("bind device: %v", err)
	}

	inactive := seedTable(t, db, 3)
	if err := repo.Update(inactive.ID, map[string]any{"active": false}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	linkable, err := svc.ListLinkable()
	if err != nil {
		t.Fatalf("list linkable: %v", err)
	}
	if len(linkable) != 1 || linkable[0].ID != busy.ID {
		t.Fatalf("linkable = %v, want only the unlinked active table %d", linkable, busy.ID)
	}

	statuses, err := svc.ListAvailability()
	if err != nil {
		t.Fatalf("list availability: %v", err)
	}
	byNum := map[int]TableStatus{}
	for _, s := range statuses {
		byNum[s.TableNum] = s
	}
	if byNum[1].Available {
		t.Error("table 1 has an open order, should be unavailable")
	}
	if !byNum[2].Available {
		t.Error("table 2 has no orders, should be available")
	}
	if !byNum[2].Linked {
		t.Error("table 2 should report its device binding")
	}
}
