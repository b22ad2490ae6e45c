package repositories

import (
	"errors"

	"gorm.io/gorm"

	"adminpanel_backend/internal/models"
)

type DeviceRepository interface {
	Create(db *gorm.DB, device *models.Device) error
	GetByID(db *gorm.DB, id string) (*models.Device, error)
	ListByOrganization(db *gorm.DB, orgID uint) ([]models.Device, error)
	Update(db *gorm.DB, device *models.Device) error
	Delete(db *gorm.DB, id string) error
	Exists(db *gorm.DB, branchID uint, name, os, excludeID string) (bool, error)
}

type deviceRepository struct{}

func NewDeviceRepository() DeviceRepository {
	return &deviceRepository{}
}

func (r *deviceRepository) Create(db *gorm.DB, device *models.Device) error {
	return db.Create(device).Error
}

func (r *deviceRepository) GetByID(db *gorm.DB, id string) (*models.Device, error) {
	var device models.Device
	if err := db.Where("id = ?", id).First(&device).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}
	return &device, nil
}

// ListByOrganization - все устройства организации независимо от филиала
func (r *deviceRepository) ListByOrganization(db *gorm.DB, orgID uint) ([]models.Device, error) {
	var devices []models.Device
	err := db.Joins("JOIN branches ON branches.id = devices.branch_id").
		Where("branches.organization_id = ?", orgID).
		Order("devices.created_at").
		Find(&devices).Error
	if err != nil {
		return nil, err
	}
	return devices, nil
}

func (r *deviceRepository) Update(db *gorm.DB, device *models.Device) error {
	return db.Save(device).Error
}

func (r *deviceRepository) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Device{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDeviceNotFound
	}
	return nil
}

func (r *deviceRepository) Exists(db *gorm.DB, branchID uint, name, os, excludeID string) (bool, error) {
	query := db.Model(&models.Device{}).
		Where("branch_id = ? AND name = ? AND os = ?", branchID, name, os)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
