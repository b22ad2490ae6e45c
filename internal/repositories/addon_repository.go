package repositories

import (
	"gorm.io/gorm"

	"adminpanel_backend/internal/models"
)

type AddOnRepository interface {
	Create(db *gorm.DB, addOn *models.AddOn) error
	ListByOrganization(db *gorm.DB, orgID uint) ([]models.AddOn, error)
	Delete(db *gorm.DB, orgID uint, addOnID string) error
}

type addOnRepository struct{}

func NewAddOnRepository() AddOnRepository {
	return &addOnRepository{}
}

func (r *addOnRepository) Create(db *gorm.DB, addOn *models.AddOn) error {
	return db.Create(addOn).Error
}

func (r *addOnRepository) ListByOrganization(db *gorm.DB, orgID uint) ([]models.AddOn, error) {
	var addOns []models.AddOn
	err := db.Where("organization_id = ?", orgID).Order("created_at").Find(&addOns).Error
	if err != nil {
		return nil, err
	}
	return addOns, nil
}

func (r *addOnRepository) Delete(db *gorm.DB, orgID uint, addOnID string) error {
	result := db.Where("id = ? AND organization_id = ?", addOnID, orgID).
		Delete(&models.AddOn{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAddOnNotFound
	}
	return nil
}
