package utils

import (
	"errors"
	"testing"
	"time"
)

func TestStaffTokenRoundTrip(t *testing.T) {
	token, err := GenerateStaffToken(42, "chef", "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseStaffToken(token, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "chef" {
		t.Errorf("claims = %d/%s, want 42/chef", claims.UserID, claims.Role)
	}
}

func TestDeviceTokenRoundTrip(t *testing.T) {
	token, err := GenerateDeviceToken(5, "device-abc", "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseDeviceToken(token, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.TableNum != 5 || claims.DeviceID != "device-abc" {
		t.Errorf("claims = %d/%s, want 5/device-abc", claims.TableNum, claims.DeviceID)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := GenerateStaffToken(1, "admin", "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseStaffToken(token, "other"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestParseRejectsExpired(t *testing.T) {
	token, err := GenerateDeviceToken(5, "device-abc", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseDeviceToken(token, "secret"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := ParseStaffToken("not-a-token", "secret"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}
