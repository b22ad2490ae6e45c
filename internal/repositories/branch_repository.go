package repositories

import (
	"errors"

	"gorm.io/gorm"

	"adminpanel_backend/internal/models"
)

type BranchRepository interface {
	Create(db *gorm.DB, branch *models.Branch) error
	GetForOrganization(db *gorm.DB, orgID, branchID uint) (*models.Branch, error)
	ListByOrganization(db *gorm.DB, orgID uint) ([]models.Branch, error)
	Update(db *gorm.DB, branch *models.Branch) error
	Delete(db *gorm.DB, orgID, branchID uint) error
	Exists(db *gorm.DB, orgID uint, name, location string, excludeID uint) (bool, error)
}

type branchRepository struct{}

func NewBranchRepository() BranchRepository {
	return &branchRepository{}
}

func (r *branchRepository) Create(db *gorm.DB, branch *models.Branch) error {
	return db.Create(branch).Error
}

// GetForOrganization находит филиал только в пределах организации из пути.
// Чужой филиал неотличим от несуществующего.
func (r *branchRepository) GetForOrganization(db *gorm.DB, orgID, branchID uint) (*models.Branch, error) {
	var branch models.Branch
	err := db.Preload("Devices").
		Where("id = ? AND organization_id = ?", branchID, orgID).
		First(&branch).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepository) ListByOrganization(db *gorm.DB, orgID uint) ([]models.Branch, error) {
	var branches []models.Branch
	err := db.Preload("Devices").
		Where("organization_id = ?", orgID).
		Order("id").
		Find(&branches).Error
	if err != nil {
		return nil, err
	}
	return branches, nil
}

func (r *branchRepository) Update(db *gorm.DB, branch *models.Branch) error {
	return db.Save(branch).Error
}

// Delete удаляет филиал и его устройства
func (r *branchRepository) Delete(db *gorm.DB, orgID, branchID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND organization_id = ?", branchID, orgID).
			Delete(&models.Branch{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBranchNotFound
		}
		return tx.Where("branch_id = ?", branchID).Delete(&models.Device{}).Error
	})
}

func (r *branchRepository) Exists(db *gorm.DB, orgID uint, name, location string, excludeID uint) (bool, error) {
	query := db.Model(&models.Branch{}).
		Where("organization_id = ? AND name = ? AND location = ?", orgID, name, location)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
