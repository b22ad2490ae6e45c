package services

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"adminpanel_backend/internal/appErrors"
	"adminpanel_backend/internal/auth"
	"adminpanel_backend/internal/logger"
	"adminpanel_backend/internal/models"
	"adminpanel_backend/internal/repositories"
	"adminpanel_backend/internal/services/dto"
)

// PlanService - тарифные планы. Чтение публичное, запись только админ.
type PlanService struct {
	planRepo repositories.PlanRepository
}

func NewPlanService(planRepo repositories.PlanRepository) *PlanService {
	return &PlanService{planRepo: planRepo}
}

// List возвращает только активные планы (страница прайсинга)
func (s *PlanService) List(db *gorm.DB, p *auth.Principal) ([]models.CustomPlan, error) {
	if err := auth.Authorize(p, auth.OpPlanRead, auth.Target{}); err != nil {
		return nil, err
	}
	plans, err := s.planRepo.List(db, true)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return plans, nil
}

func (s *PlanService) Get(db *gorm.DB, p *auth.Principal, id uint) (*models.CustomPlan, error) {
	if err := auth.Authorize(p, auth.OpPlanRead, auth.Target{}); err != nil {
		return nil, err
	}
	plan, err := s.planRepo.GetByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return nil, appErrors.ErrPlanNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return plan, nil
}

func (s *PlanService) Create(db *gorm.DB, p *auth.Principal, req dto.CreatePlanRequest) (*models.CustomPlan, error) {
	if err := auth.Authorize(p, auth.OpPlanWrite, auth.Target{}); err != nil {
		return nil, err
	}

	exists, err := s.planRepo.NameExists(db, req.Name, 0)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if exists {
		return nil, appErrors.ErrPlanAlreadyExists
	}

	plan := &models.CustomPlan{
		Name:             req.Name,
		Branches:         req.Branches,
		DevicesPerBranch: req.DevicesPerBranch,
		Waiters:          req.Waiters,
		KDS:              req.KDS,
		WarehouseControl: req.WarehouseControl,
		TechCard:         req.TechCard,
		ChatSupport:      req.ChatSupport,
		APIIntegrations:  datatypes.JSONSlice[string](req.APIIntegrations),
		PhoneSupport247:  req.PhoneSupport247,
		PersonalManager:  req.PersonalManager,
		MonthlyPrice:     req.MonthlyPrice,
		YearlyPrice:      req.YearlyPrice,
		Flag:             req.Flag,
		Color:            req.Color,
		IsActive:         true,
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := s.planRepo.Create(db, plan); err != nil {
		return nil, appErrors.InternalError(err)
	}

	logger.Info("Plan created", "plan_id", plan.ID, "name", plan.Name)
	return plan, nil
}

func (s *PlanService) Update(db *gorm.DB, p *auth.Principal, id uint, req dto.UpdatePlanRequest) (*models.CustomPlan, error) {
	if err := auth.Authorize(p, auth.OpPlanWrite, auth.Target{}); err != nil {
		return nil, err
	}

	plan, err := s.planRepo.GetByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return nil, appErrors.ErrPlanNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if req.Name != nil && *req.Name != plan.Name {
		exists, err := s.planRepo.NameExists(db, *req.Name, id)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		if exists {
			return nil, appErrors.ErrPlanAlreadyExists
		}
		plan.Name = *req.Name
	}
	if req.Branches != nil {
		plan.Branches = *req.Branches
	}
	if req.DevicesPerBranch != nil {
		plan.DevicesPerBranch = *req.DevicesPerBranch
	}
	if req.Waiters != nil {
		plan.Waiters = *req.Waiters
	}
	if req.KDS != nil {
		plan.KDS = *req.KDS
	}
	if req.WarehouseControl != nil {
		plan.WarehouseControl = *req.WarehouseControl
	}
	if req.TechCard != nil {
		plan.TechCard = *req.TechCard
	}
	if req.ChatSupport != nil {
		plan.ChatSupport = *req.ChatSupport
	}
	if req.APIIntegrations != nil {
		plan.APIIntegrations = datatypes.JSONSlice[string](*req.APIIntegrations)
	}
	if req.PhoneSupport247 != nil {
		plan.PhoneSupport247 = *req.PhoneSupport247
	}
	if req.PersonalManager != nil {
		plan.PersonalManager = *req.PersonalManager
	}
	if req.MonthlyPrice != nil {
		plan.MonthlyPrice = *req.MonthlyPrice
	}
	if req.YearlyPrice != nil {
		plan.YearlyPrice = *req.YearlyPrice
	}
	if req.Flag != nil {
		plan.Flag = *req.Flag
	}
	if req.Color != nil {
		plan.Color = *req.Color
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := s.planRepo.Update(db, plan); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return plan, nil
}

func (s *PlanService) Delete(db *gorm.DB, p *auth.Principal, id uint) error {
	if err := auth.Authorize(p, auth.OpPlanWrite, auth.Target{}); err != nil {
		return err
	}

	if err := s.planRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return appErrors.ErrPlanNotFound
		}
		return appErrors.InternalError(err)
	}

	logger.Info("Plan deleted", "plan_id", id)
	return nil
}
