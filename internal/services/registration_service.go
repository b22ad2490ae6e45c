package services

import (
	"errors"

	"gorm.io/gorm"

	"adminpanel_backend/internal/appErrors"
	"adminpanel_backend/internal/auth"
	"adminpanel_backend/internal/logger"
	"adminpanel_backend/internal/models"
	"adminpanel_backend/internal/repositories"
	"adminpanel_backend/internal/services/dto"
)

// RegistrationService - заявки на регистрацию регистраторов.
// pending -> approved | rejected, оба состояния терминальные.
type RegistrationService struct {
	registrationRepo repositories.RegistrationRepository
	userRepo         repositories.UserRepository
}

func NewRegistrationService(
	registrationRepo repositories.RegistrationRepository,
	userRepo repositories.UserRepository,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
	}
}

// Submit принимает публичную заявку. Телефон на этом шаге не проверяется
// на уникальность - конфликт всплывет при одобрении.
func (s *RegistrationService) Submit(db *gorm.DB, req dto.RegistrationSubmitRequest) (*models.RegistrationRequest, error) {
	request := &models.RegistrationRequest{
		FullName: req.FullName,
		Phone:    req.Phone,
		Password: req.Password,
		Address:  req.Address,
		Status:   models.RegistrationStatusPending,
	}
	if err := s.registrationRepo.Create(db, request); err != nil {
		return nil, appErrors.InternalError(err)
	}

	logger.Info("Registration request submitted", "request_id", request.ID)
	return request, nil
}

func (s *RegistrationService) List(db *gorm.DB, p *auth.Principal, status string) ([]models.RegistrationRequest, error) {
	if err := auth.Authorize(p, auth.OpRegistrationList, auth.Target{}); err != nil {
		return nil, err
	}

	requests, err := s.registrationRepo.List(db, models.RegistrationStatus(status))
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return requests, nil
}

// Approve одобряет заявку: в одной транзакции создается сотрудник-регистратор
// с хешированным паролем и заявка помечается approved. Любая ошибка
// откатывает оба изменения.
func (s *RegistrationService) Approve(db *gorm.DB, p *auth.Principal, req dto.ApproveRegistrationRequest) (*models.User, error) {
	if err := auth.Authorize(p, auth.OpRegistrationDecide, auth.Target{}); err != nil {
		return nil, err
	}

	var created *models.User

	err := db.Transaction(func(tx *gorm.DB) error {
		request, err := s.registrationRepo.GetPendingByID(tx, req.ID)
		if err != nil {
			return err
		}

		exists, err := s.userRepo.PhoneExists(tx, request.Phone, 0)
		if err != nil {
			return err
		}
		if exists {
			return appErrors.ErrPhoneAlreadyExists
		}

		hash, err := auth.HashPassword(request.Password)
		if err != nil {
			return err
		}

		user := &models.User{
			FullName:        request.FullName,
			Phone:           request.Phone,
			PasswordHash:    hash,
			Address:         request.Address,
			Role:            models.UserRoleRegistrator,
			SharePercentage: req.SharePercentage,
			IsActive:        true,
		}
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}

		request.Status = models.RegistrationStatusApproved
		if err := s.registrationRepo.Update(tx, request); err != nil {
			return err
		}

		created = user
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, appErrors.ErrRequestNotFound
		}
		var appErr *appErrors.AppError
		if appErrors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, appErrors.InternalError(err)
	}

	logger.Info("Registration request approved",
		"request_id", req.ID,
		"user_id", created.ID,
	)
	return created, nil
}

// Reject отклоняет pending-заявку
func (s *RegistrationService) Reject(db *gorm.DB, p *auth.Principal, id uint) (*models.RegistrationRequest, error) {
	if err := auth.Authorize(p, auth.OpRegistrationDecide, auth.Target{}); err != nil {
		return nil, err
	}

	request, err := s.registrationRepo.GetPendingByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, appErrors.ErrRequestNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	request.Status = models.RegistrationStatusRejected
	if err := s.registrationRepo.Update(db, request); err != nil {
		return nil, appErrors.InternalError(err)
	}

	logger.Info("Registration request rejected", "request_id", id)
	return request, nil
}
