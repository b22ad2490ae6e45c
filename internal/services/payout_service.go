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

// PayoutService - выплаты сотрудникам из их накопленного баланса
type PayoutService struct {
	payoutRepo repositories.PayoutRepository
	userRepo   repositories.UserRepository
}

func NewPayoutService(
	payoutRepo repositories.PayoutRepository,
	userRepo repositories.UserRepository,
) *PayoutService {
	return &PayoutService{
		payoutRepo: payoutRepo,
		userRepo:   userRepo,
	}
}

func (s *PayoutService) List(db *gorm.DB, p *auth.Principal, query dto.PayoutListQuery) ([]models.UserPayout, error) {
	if err := auth.Authorize(p, auth.OpPayoutList, auth.Target{}); err != nil {
		return nil, err
	}

	from, err := parseOptionalDate("start_date", query.StartDate)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDate("end_date", query.EndDate)
	if err != nil {
		return nil, err
	}

	payouts, err := s.payoutRepo.List(db, repositories.PayoutFilter{
		UserID: query.UserID,
		From:   from,
		To:     to,
	})
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return payouts, nil
}

// Create регистрирует выплату. Баланс может уйти в минус - это допустимо,
// никакой проверки остатка нет.
func (s *PayoutService) Create(db *gorm.DB, p *auth.Principal, req dto.CreatePayoutRequest) (*models.UserPayout, error) {
	if err := auth.Authorize(p, auth.OpPayoutWrite, auth.Target{}); err != nil {
		return nil, err
	}

	source := models.PayoutSource(req.Source)
	if !models.ValidPayoutSource(source) {
		return nil, appErrors.ErrInvalidSource
	}

	payoutDate, err := parseDateField("payout_date", req.PayoutDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(db, req.UserID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	payout := &models.UserPayout{
		UserID:     req.UserID,
		Amount:     req.Amount,
		Source:     source,
		PayoutDate: payoutDate,
	}
	if err := s.payoutRepo.Create(db, payout); err != nil {
		return nil, appErrors.InternalError(err)
	}

	logger.Info("Payout recorded",
		"payout_id", payout.ID,
		"user_id", payout.UserID,
		"amount", payout.Amount,
	)
	return payout, nil
}

func (s *PayoutService) Delete(db *gorm.DB, p *auth.Principal, id uint) error {
	if err := auth.Authorize(p, auth.OpPayoutWrite, auth.Target{}); err != nil {
		return err
	}

	if err := s.payoutRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrPayoutNotFound) {
			return appErrors.ErrPayoutNotFound
		}
		return appErrors.InternalError(err)
	}

	logger.Info("Payout deleted", "payout_id", id)
	return nil
}
