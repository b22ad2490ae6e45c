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

// PaymentService - поступления от организаций и сверка за период
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	orgRepo     repositories.OrganizationRepository
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	orgRepo repositories.OrganizationRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		orgRepo:     orgRepo,
	}
}

func (s *PaymentService) List(db *gorm.DB, p *auth.Principal, query dto.PaymentListQuery) ([]models.Payment, error) {
	if err := auth.Authorize(p, auth.OpPaymentList, auth.Target{}); err != nil {
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

	filter := repositories.PaymentFilter{
		OrganizationID: query.OrganizationID,
		From:           from,
		To:             to,
		Limit:          query.Limit,
		Offset:         query.Offset,
	}
	if query.Source != "" {
		source := models.PaymentSource(query.Source)
		if !models.ValidPaymentSource(source) {
			return nil, appErrors.ErrInvalidSource
		}
		filter.Source = source
	}

	payments, err := s.paymentRepo.List(db, filter)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return payments, nil
}

func (s *PaymentService) Create(db *gorm.DB, p *auth.Principal, req dto.CreatePaymentRequest) (*models.Payment, error) {
	if err := auth.Authorize(p, auth.OpPaymentCreate, auth.Target{}); err != nil {
		return nil, err
	}

	source := models.PaymentSource(req.Source)
	if !models.ValidPaymentSource(source) {
		return nil, appErrors.ErrInvalidSource
	}

	paymentDate, err := parseDateField("payment_date", req.PaymentDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.orgRepo.GetByID(db, req.OrganizationID); err != nil {
		if errors.Is(err, repositories.ErrOrganizationNotFound) {
			return nil, appErrors.ErrOrganizationNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	payment := &models.Payment{
		OrganizationID: req.OrganizationID,
		Amount:         req.Amount,
		Source:         source,
		PaymentDate:    paymentDate,
	}
	if err := s.paymentRepo.Create(db, payment); err != nil {
		return nil, appErrors.InternalError(err)
	}

	logger.Info("Payment recorded",
		"payment_id", payment.ID,
		"organization_id", payment.OrganizationID,
		"amount", payment.Amount,
	)
	return payment, nil
}

// Sverka - сверка платежей организации за период [start, end]
func (s *PaymentService) Sverka(db *gorm.DB, p *auth.Principal, orgID uint, startDate, endDate string) (*dto.SverkaResponse, error) {
	if err := auth.Authorize(p, auth.OpPaymentSverka, auth.Target{OrganizationID: orgID}); err != nil {
		return nil, err
	}

	from, err := parseDateField("start_date", startDate)
	if err != nil {
		return nil, err
	}
	to, err := parseDateField("end_date", endDate)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, appErrors.ValidationError(map[string]string{
			"end_date": "Must not be before start_date",
		})
	}

	org, err := s.orgRepo.GetByID(db, orgID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrganizationNotFound) {
			return nil, appErrors.ErrOrganizationNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	payments, err := s.paymentRepo.ListForOrgBetween(db, orgID, from, to)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	total, err := s.paymentRepo.SumForOrgBetween(db, orgID, from, to)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.SverkaResponse{
		OrganizationID:   org.ID,
		OrganizationName: org.Name,
		StartDate:        from,
		EndDate:          to,
		TotalAmount:      total,
		PaymentCount:     len(payments),
		Payments:         payments,
	}, nil
}
