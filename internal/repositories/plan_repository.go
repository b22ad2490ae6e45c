package repositories

import (
	"errors"

	"gorm.io/gorm"

	"adminpanel_backend/internal/models"
)

type PlanRepository interface {
	Create(db *gorm.DB, plan *models.CustomPlan) error
	GetByID(db *gorm.DB, id uint) (*models.CustomPlan, error)
	List(db *gorm.DB, onlyActive bool) ([]models.CustomPlan, error)
	Update(db *gorm.DB, plan *models.CustomPlan) error
	Delete(db *gorm.DB, id uint) error
	NameExists(db *gorm.DB, name string, excludeID uint) (bool, error)
}

type planRepository struct{}

func NewPlanRepository() PlanRepository {
	return &planRepository{}
}

func (r *planRepository) Create(db *gorm.DB, plan *models.CustomPlan) error {
	return db.Create(plan).Error
}

func (r *planRepository) GetByID(db *gorm.DB, id uint) (*models.CustomPlan, error) {
	var plan models.CustomPlan
	if err := db.First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) List(db *gorm.DB, onlyActive bool) ([]models.CustomPlan, error) {
	query := db.Model(&models.CustomPlan{})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}

	var plans []models.CustomPlan
	if err := query.Order("monthly_price").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) Update(db *gorm.DB, plan *models.CustomPlan) error {
	return db.Save(plan).Error
}

func (r *planRepository) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.CustomPlan{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *planRepository) NameExists(db *gorm.DB, name string, excludeID uint) (bool, error) {
	query := db.Model(&models.CustomPlan{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
