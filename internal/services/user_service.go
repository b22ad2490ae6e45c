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

// UserService - сотрудники и их балансы
type UserService struct {
	userRepo    repositories.UserRepository
	paymentRepo repositories.PaymentRepository
	payoutRepo  repositories.PayoutRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	paymentRepo repositories.PaymentRepository,
	payoutRepo repositories.PayoutRepository,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		payoutRepo:  payoutRepo,
	}
}

func (s *UserService) List(db *gorm.DB, p *auth.Principal, filter repositories.UserFilter) ([]models.User, error) {
	if err := auth.Authorize(p, auth.OpUserList, auth.Target{}); err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(db, filter)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return users, nil
}

func (s *UserService) Get(db *gorm.DB, p *auth.Principal, id uint) (*models.User, error) {
	if err := auth.Authorize(p, auth.OpUserRead, auth.Target{}); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return user, nil
}

func (s *UserService) Create(db *gorm.DB, p *auth.Principal, req dto.CreateUserRequest) (*models.User, error) {
	if err := auth.Authorize(p, auth.OpUserWrite, auth.Target{}); err != nil {
		return nil, err
	}

	role := models.UserRole(req.Role)
	if !models.ValidUserRole(role) {
		return nil, appErrors.ErrInvalidRole
	}

	exists, err := s.userRepo.PhoneExists(db, req.Phone, 0)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if exists {
		return nil, appErrors.ErrPhoneAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	user := &models.User{
		FullName:        req.FullName,
		Phone:           req.Phone,
		PasswordHash:    hash,
		Address:         req.Address,
		Role:            role,
		SharePercentage: req.SharePercentage,
		IsActive:        true,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		return nil, appErrors.InternalError(err)
	}

	logger.Info("User created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (s *UserService) Update(db *gorm.DB, p *auth.Principal, id uint, req dto.UpdateUserRequest) (*models.User, error) {
	if err := auth.Authorize(p, auth.OpUserWrite, auth.Target{}); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if req.Role != nil {
		role := models.UserRole(*req.Role)
		if !models.ValidUserRole(role) {
			return nil, appErrors.ErrInvalidRole
		}
		user.Role = role
	}
	if req.Phone != nil && *req.Phone != user.Phone {
		exists, err := s.userRepo.PhoneExists(db, *req.Phone, id)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		if exists {
			return nil, appErrors.ErrPhoneAlreadyExists
		}
		user.Phone = *req.Phone
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		user.PasswordHash = hash
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.SharePercentage != nil {
		user.SharePercentage = *req.SharePercentage
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return user, nil
}

func (s *UserService) Delete(db *gorm.DB, p *auth.Principal, id uint) error {
	if err := auth.Authorize(p, auth.OpUserWrite, auth.Target{}); err != nil {
		return err
	}

	if err := s.userRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.InternalError(err)
	}

	logger.Info("User deleted", "user_id", id)
	return nil
}

// Balances считает текущий баланс каждого сотрудника.
// Всегда пересчитывается по фактическим платежам и выплатам.
func (s *UserService) Balances(db *gorm.DB, p *auth.Principal) ([]dto.UserBalance, error) {
	if err := auth.Authorize(p, auth.OpUserBalances, auth.Target{}); err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(db, repositories.UserFilter{})
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	totalEarnings, err := s.paymentRepo.SumAll(db)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	payoutSums, err := s.payoutRepo.SumByUser(db)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return ComputeBalances(users, totalEarnings, payoutSums), nil
}
