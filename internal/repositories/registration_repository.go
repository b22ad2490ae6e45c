package repositories

import (
	"errors"

	"gorm.io/gorm"

	"adminpanel_backend/internal/models"
)

type RegistrationRepository interface {
	Create(db *gorm.DB, request *models.RegistrationRequest) error
	List(db *gorm.DB, status models.RegistrationStatus) ([]models.RegistrationRequest, error)
	GetPendingByID(db *gorm.DB, id uint) (*models.RegistrationRequest, error)
	Update(db *gorm.DB, request *models.RegistrationRequest) error
}

type registrationRepository struct{}

func NewRegistrationRepository() RegistrationRepository {
	return &registrationRepository{}
}

func (r *registrationRepository) Create(db *gorm.DB, request *models.RegistrationRequest) error {
	return db.Create(request).Error
}

func (r *registrationRepository) List(db *gorm.DB, status models.RegistrationStatus) ([]models.RegistrationRequest, error) {
	query := db.Model(&models.RegistrationRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.RegistrationRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// GetPendingByID находит только pending-заявку: одобренная или отклоненная
// заявка для операций approve/reject неотличима от несуществующей.
func (r *registrationRepository) GetPendingByID(db *gorm.DB, id uint) (*models.RegistrationRequest, error) {
	var request models.RegistrationRequest
	err := db.Where("id = ? AND status = ?", id, models.RegistrationStatusPending).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *registrationRepository) Update(db *gorm.DB, request *models.RegistrationRequest) error {
	return db.Save(request).Error
}
