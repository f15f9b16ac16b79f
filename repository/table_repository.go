package repository

import (
	"github.com/parodie/restaurantBack/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) FindByID(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) FindByNum(tableNum int) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.Where("table_num = ?", tableNum).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// FindByNumAndDevice is the device-token cross-check: both the table number
// and the bound device id must match exactly.
func (r *TableRepository) FindByNumAndDevice(tableNum int, deviceID string) (*entity.Table, error) {
	var t entity.Table
	err := r.DB.Where("table_num = ? AND device_id = ?", tableNum, deviceID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) SetDevice(id uint, deviceID *string) error {
	return r.DB.Model(&entity.Table{}).Where("id = ?", id).Update("device_id", deviceID).Error
}

func (r *TableRepository) List() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Order("table_num").Find(&tables).Error
	return tables, err
}

// ListUnlinked returns active tables with no bound device, the candidates a
// fresh tablet may link to. Distinct from order-based availability.
func (r *TableRepository) ListUnlinked() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Where("active = ? AND device_id IS NULL", true).
		Order("table_num").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Table{}).Where("id = ?", id).Updates(updates).Error
}

func (r *TableRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Table{}, id).Error
}

// CountOpenOrders backs the derived "available" property.
func (r *TableRepository) CountOpenOrders(tableID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Where("table_id = ? AND status IN ?", tableID, entity.OpenStatuses).
		Count(&count).Error
	return count, err
}
