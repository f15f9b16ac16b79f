package services

import (
	"errors"
	"testing"
	"time"

	"github.com/parodie/restaurantBack/entity"
	"github.com/parodie/restaurantBack/repository"
	"github.com/parodie/restaurantBack/utils"

	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), testSecret, time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("gordon", "secret123", entity.RoleChef)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != entity.RoleChef || !user.Active {
		t.Errorf("user = %+v, want active chef", user)
	}
	if user.Password == "secret123" {
		t.Error("password stored in plaintext")
	}

	token, logged, err := svc.Login("gordon", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != user.ID {
		t.Errorf("logged in as %d, want %d", logged.ID, user.ID)
	}

	claims, err := utils.ParseStaffToken(token, testSecret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != entity.RoleChef {
		t.Errorf("claims = %d/%s, want %d/chef", claims.UserID, claims.Role, user.ID)
	}
}

func TestLoginFailures(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	if _, err := svc.Register("jean", "secret123", entity.RoleWaiter); err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "jean", "nope"},
		{"unknown user", "ghost", "secret123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(tt.username, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

// Deactivation is the delete: the row survives, the login dies.
func TestDeactivateBlocksLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	user, err := svc.Register("jean", "secret123", entity.RoleWaiter)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Deactivate(user.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	_, _, err = svc.Login("jean", "secret123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}

	var count int64
	db.Model(&entity.User{}).Where("id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("user row deleted; soft delete must keep it")
	}
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	if _, err := svc.Register("dup", "secret123", entity.RoleChef); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := svc.Register("dup", "other456", entity.RoleWaiter)
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}

	_, err = svc.Register("new", "secret123", "manager")
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("err = %v, want ErrInvalidRole", err)
	}
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	user, err := svc.Register("gordon", "oldpass1", entity.RoleChef)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "newpass1"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	if _, _, err := svc.Login("gordon", "oldpass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password still works")
	}
	if _, _, err := svc.Login("gordon", "newpass1"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}
