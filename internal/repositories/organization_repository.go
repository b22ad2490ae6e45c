package repositories

import (
	"errors"

	"gorm.io/gorm"

	"adminpanel_backend/internal/models"
)

// OrganizationFilter - параметры выборки организаций.
// RegistratorID сужает выдачу до организаций конкретного регистратора,
// SelfID - до самой организации (для роли organization).
type OrganizationFilter struct {
	Search        string
	Plan          string
	RegistratorID *uint
	SelfID        *uint
}

type OrganizationRepository interface {
	Create(db *gorm.DB, org *models.Organization) error
	GetByID(db *gorm.DB, id uint) (*models.Organization, error)
	GetByPhone(db *gorm.DB, phone string) (*models.Organization, error)
	List(db *gorm.DB, filter OrganizationFilter) ([]models.Organization, error)
	Update(db *gorm.DB, org *models.Organization) error
	Delete(db *gorm.DB, id uint) error
	PhoneExists(db *gorm.DB, phone string, excludeID uint) (bool, error)
}

type organizationRepository struct{}

func NewOrganizationRepository() OrganizationRepository {
	return &organizationRepository{}
}

func (r *organizationRepository) Create(db *gorm.DB, org *models.Organization) error {
	return db.Create(org).Error
}

func (r *organizationRepository) GetByID(db *gorm.DB, id uint) (*models.Organization, error) {
	var org models.Organization
	err := db.Preload("Branches").Preload("Branches.Devices").Preload("AddOns").
		First(&org, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) GetByPhone(db *gorm.DB, phone string) (*models.Organization, error) {
	var org models.Organization
	err := db.Preload("Branches").Preload("Branches.Devices").Preload("AddOns").
		Where("phone = ?", phone).First(&org).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) List(db *gorm.DB, filter OrganizationFilter) ([]models.Organization, error) {
	query := db.Model(&models.Organization{}).
		Preload("Branches").Preload("Branches.Devices").Preload("AddOns")

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ? OR boss LIKE ?", like, like, like)
	}
	if filter.Plan != "" {
		query = query.Where("plan = ?", filter.Plan)
	}
	if filter.RegistratorID != nil {
		query = query.Where("registrator_id = ?", *filter.RegistratorID)
	}
	if filter.SelfID != nil {
		query = query.Where("id = ?", *filter.SelfID)
	}

	var orgs []models.Organization
	if err := query.Order("id").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

func (r *organizationRepository) Update(db *gorm.DB, org *models.Organization) error {
	return db.Save(org).Error
}

// Delete удаляет организацию со всеми филиалами, устройствами,
// дополнениями и платежами. Каскад явный, в одной транзакции.
func (r *organizationRepository) Delete(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var branchIDs []uint
		if err := tx.Model(&models.Branch{}).
			Where("organization_id = ?", id).
			Pluck("id", &branchIDs).Error; err != nil {
			return err
		}

		if len(branchIDs) > 0 {
			if err := tx.Where("branch_id IN ?", branchIDs).Delete(&models.Device{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("organization_id = ?", id).Delete(&models.Branch{}).Error; err != nil {
			return err
		}
		if err := tx.Where("organization_id = ?", id).Delete(&models.AddOn{}).Error; err != nil {
			return err
		}
		if err := tx.Where("organization_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Organization{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrOrganizationNotFound
		}
		return nil
	})
}

func (r *organizationRepository) PhoneExists(db *gorm.DB, phone string, excludeID uint) (bool, error) {
	query := db.Model(&models.Organization{}).Where("phone = ?", phone)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
