package services

import (
	"time"

	"github.com/parodie/restaurantBack/entity"
	"github.com/parodie/restaurantBack/repository"
	"github.com/parodie/restaurantBack/utils"

	"github.com/google/uuid"
)

// DeviceService provisions table tablets. The signed device token is the only
// trust mechanism: payload {tableNum, deviceId, exp}, cross-checked against
// the Table row on every request by the device middleware.
type DeviceService struct {
	Tables *repository.TableRepository
	secret string
	ttl    time.Duration
}

func NewDeviceService(tables *repository.TableRepository, secret string, ttl time.Duration) *DeviceService {
	return &DeviceService{Tables: tables, secret: secret, ttl: ttl}
}

type LinkResult struct {
	Token    string `json:"token"`
	TableNum int    `json:"tableNum"`
	DeviceID string `json:"deviceId"`
}

// Link binds a fresh device identifier to an unlinked table and returns the
// signed token the tablet will present from now on.
func (s *DeviceService) Link(tableNum int) (*LinkResult, error) {
	t, err := s.Tables.FindByNum(tableNum)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	if t.Linked() {
		return nil, ErrAlreadyLinked
	}

	deviceID := uuid.NewString()
	if err := s.Tables.SetDevice(t.ID, &deviceID); err != nil {
		return nil, err
	}

	token, err := utils.GenerateDeviceToken(tableNum, deviceID, s.secret, s.ttl)
	if err != nil {
		return nil, err
	}
	return &LinkResult{Token: token, TableNum: tableNum, DeviceID: deviceID}, nil
}

// Reset clears the binding unconditionally. Outstanding tokens for the old
// device id stop matching the row and die with it.
func (s *DeviceService) Reset(table *entity.Table) error {
	return s.Tables.SetDevice(table.ID, nil)
}
