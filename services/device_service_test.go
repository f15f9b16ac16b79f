package services

import (
	"errors"
	"testing"
	"time"

	"github.com/parodie/restaurantBack/repository"
	"github.com/parodie/restaurantBack/utils"

	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newDeviceService(db *gorm.DB) *DeviceService {
	return NewDeviceService(repository.NewTableRepository(db), testSecret, time.Hour)
}

func TestLinkDevice(t *testing.T) {
	db := setupTestDB(t)
	svc := newDeviceService(db)
	seedTable(t, db, 5)

	result, err := svc.Link(5)
	if err != nil {
		t.Fatalf("link: %v", err)
	}
	if result.DeviceID == "" {
		t.Fatal("no device id generated")
	}

	// token embeds the pair the middleware will cross-check
	claims, err := utils.ParseDeviceToken(result.Token, testSecret)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.TableNum != 5 || claims.DeviceID != result.DeviceID {
		t.Errorf("claims = %d/%s, want 5/%s", claims.TableNum, claims.DeviceID, result.DeviceID)
	}

	// the binding is persisted
	table, err := svc.Tables.FindByNum(5)
	if err != nil {
		t.Fatalf("reload table: %v", err)
	}
	if table.DeviceID == nil || *table.DeviceID != result.DeviceID {
		t.Errorf("stored device = %v, want %s", table.DeviceID, result.DeviceID)
	}
}

func TestLinkDeviceAlreadyLinked(t *testing.T) {
	db := setupTestDB(t)
	svc := newDeviceService(db)
	seedTable(t, db, 3)

	if _, err := svc.Link(3); err != nil {
		t.Fatalf("first link: %v", err)
	}
	_, err := svc.Link(3)
	if !errors.Is(err, ErrAlreadyLinked) {
		t.Fatalf("err = %v, want ErrAlreadyLinked", err)
	}
}

func TestLinkDeviceUnknownTable(t *testing.T) {
	db := setupTestDB(t)
	svc := newDeviceService(db)

	_, err := svc.Link(42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestResetThenRelink(t *testing.T) {
	db := setupTestDB(t)
	svc := newDeviceService(db)
	seedTable(t, db, 7)

	first, err := svc.Link(7)
	if err != nil {
		t.Fatalf("link: %v", err)
	}

	table, _ := svc.Tables.FindByNum(7)
	if err := svc.Reset(table); err != nil {
		t.Fatalf("reset: %v", err)
	}

	table, _ = svc.Tables.FindByNum(7)
	if table.DeviceID != nil {
		t.Fatalf("device still bound after reset: %s", *table.DeviceID)
	}

	second, err := svc.Link(7)
	if err != nil {
		t.Fatalf("relink: %v", err)
	}
	if second.DeviceID == first.DeviceID {
		t.Error("relink reused the old device id")
	}
}
