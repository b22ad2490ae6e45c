package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"adminpanel_backend/internal/appErrors"
	"adminpanel_backend/internal/auth"
	"adminpanel_backend/internal/logger"
	"adminpanel_backend/internal/models"
	"adminpanel_backend/internal/repositories"
	"adminpanel_backend/internal/services/dto"
)

// OrganizationService - организации и их вложенные сущности
// (филиалы, устройства, дополнения)
type OrganizationService struct {
	orgRepo    repositories.OrganizationRepository
	branchRepo repositories.BranchRepository
	deviceRepo repositories.DeviceRepository
	addOnRepo  repositories.AddOnRepository
}

func NewOrganizationService(
	orgRepo repositories.OrganizationRepository,
	branchRepo repositories.BranchRepository,
	deviceRepo repositories.DeviceRepository,
	addOnRepo repositories.AddOnRepository,
) *OrganizationService {
	return &OrganizationService{
		orgRepo:    orgRepo,
		branchRepo: branchRepo,
		deviceRepo: deviceRepo,
		addOnRepo:  addOnRepo,
	}
}

// List возвращает организации, доступные субъекту: админ и модератор
// видят все, регистратор - только своих, организация - только себя.
func (s *OrganizationService) List(db *gorm.DB, p *auth.Principal, filter repositories.OrganizationFilter) ([]dto.OrganizationResponse, error) {
	if err := auth.Authorize(p, auth.OpOrganizationList, auth.Target{}); err != nil {
		return nil, err
	}

	switch p.Role {
	case auth.RoleRegistrator:
		filter.RegistratorID = &p.SubjectID
	case auth.RoleOrganization:
		filter.SelfID = &p.SubjectID
	}

	orgs, err := s.orgRepo.List(db, filter)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	responses := make([]dto.OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		responses = append(responses, buildOrgResponse(org, p))
	}
	return responses, nil
}

func (s *OrganizationService) Get(db *gorm.DB, p *auth.Principal, id uint) (*dto.OrganizationResponse, error) {
	org, err := s.getAuthorized(db, p, auth.OpOrganizationRead, id)
	if err != nil {
		return nil, err
	}
	resp := buildOrgResponse(*org, p)
	return &resp, nil
}

// GetByPhone - поиск организации по телефону с теми же правами, что и чтение
func (s *OrganizationService) GetByPhone(db *gorm.DB, p *auth.Principal, phone string) (*dto.OrganizationResponse, error) {
	org, err := s.orgRepo.GetByPhone(db, phone)
	if err != nil {
		if errors.Is(err, repositories.ErrOrganizationNotFound) {
			return nil, appErrors.ErrOrganizationNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if err := auth.Authorize(p, auth.OpOrganizationRead, orgTarget(org)); err != nil {
		return nil, err
	}
	resp := buildOrgResponse(*org, p)
	return &resp, nil
}

func (s *OrganizationService) Create(db *gorm.DB, p *auth.Principal, req dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	if err := auth.Authorize(p, auth.OpOrganizationCreate, auth.Target{}); err != nil {
		return nil, err
	}

	exists, err := s.orgRepo.PhoneExists(db, req.Phone, 0)
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

	org := &models.Organization{
		Name:             req.Name,
		Phone:            req.Phone,
		Boss:             req.Boss,
		PasswordHash:     hash,
		Plan:             "Free",
		RegistratorID:    req.RegistratorID,
		RegistrationDate: models.Today(),
		IsActive:         true,
	}
	if req.Plan != "" {
		org.Plan = req.Plan
	}
	if req.PlanExpirationDays != nil {
		org.PlanExpirationDays = *req.PlanExpirationDays
	} else {
		org.PlanExpirationDays = 30
	}
	if req.RegistrationDate != nil {
		date, err := parseDateField("registration_date", *req.RegistrationDate)
		if err != nil {
			return nil, err
		}
		org.RegistrationDate = date
	}

	if err := s.orgRepo.Create(db, org); err != nil {
		return nil, appErrors.InternalError(err)
	}

	logger.Info("Organization created", "organization_id", org.ID, "name", org.Name)
	resp := buildOrgResponse(*org, p)
	return &resp, nil
}

func (s *OrganizationService) Update(db *gorm.DB, p *auth.Principal, id uint, req dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error) {
	org, err := s.getAuthorized(db, p, auth.OpOrganizationUpdate, id)
	if err != nil {
		return nil, err
	}

	if req.Phone != nil && *req.Phone != org.Phone {
		exists, err := s.orgRepo.PhoneExists(db, *req.Phone, id)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		if exists {
			return nil, appErrors.ErrPhoneAlreadyExists
		}
		org.Phone = *req.Phone
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		org.PasswordHash = hash
	}
	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.Boss != nil {
		org.Boss = *req.Boss
	}
	if req.Plan != nil {
		org.Plan = *req.Plan
	}
	if req.RegistratorID != nil {
		org.RegistratorID = req.RegistratorID
	}
	if req.PlanExpirationDays != nil {
		org.PlanExpirationDays = *req.PlanExpirationDays
	}
	if req.IsActive != nil {
		org.IsActive = *req.IsActive
	}

	if err := s.orgRepo.Update(db, org); err != nil {
		return nil, appErrors.InternalError(err)
	}
	resp := buildOrgResponse(*org, p)
	return &resp, nil
}

func (s *OrganizationService) Delete(db *gorm.DB, p *auth.Principal, id uint) error {
	if err := auth.Authorize(p, auth.OpOrganizationDelete, auth.Target{OrganizationID: id}); err != nil {
		return err
	}

	if err := s.orgRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrOrganizationNotFound) {
			return appErrors.ErrOrganizationNotFound
		}
		return appErrors.InternalError(err)
	}

	logger.Info("Organization deleted", "organization_id", id)
	return nil
}

// --- Branches ---

func (s *OrganizationService) CreateBranch(db *gorm.DB, p *auth.Principal, orgID uint, req dto.CreateBranchRequest) (*models.Branch, error) {
	if _, err := s.getAuthorized(db, p, auth.OpOrganizationUpdate, orgID); err != nil {
		return nil, err
	}

	exists, err := s.branchRepo.Exists(db, orgID, req.Name, req.Location, 0)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if exists {
		return nil, appErrors.ErrBranchAlreadyExists
	}

	branch := &models.Branch{
		OrganizationID: orgID,
		Name:           req.Name,
		Location:       req.Location,
	}
	if err := s.branchRepo.Create(db, branch); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return branch, nil
}

// ListBranches - филиалы организации с устройствами.
// Права как у чтения организации: регистратор видит только своих.
func (s *OrganizationService) ListBranches(db *gorm.DB, p *auth.Principal, orgID uint) ([]models.Branch, error) {
	if _, err := s.getAuthorized(db, p, auth.OpOrganizationRead, orgID); err != nil {
		return nil, err
	}

	branches, err := s.branchRepo.ListByOrganization(db, orgID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return branches, nil
}

func (s *OrganizationService) UpdateBranch(db *gorm.DB, p *auth.Principal, orgID, branchID uint, req dto.UpdateBranchRequest) (*models.Branch, error) {
	if _, err := s.getAuthorized(db, p, auth.OpOrganizationUpdate, orgID); err != nil {
		return nil, err
	}

	branch, err := s.branchRepo.GetForOrganization(db, orgID, branchID)
	if err != nil {
		if errors.Is(err, repositories.ErrBranchNotFound) {
			return nil, appErrors.ErrBranchNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	name := branch.Name
	location := branch.Location
	if req.Name != nil {
		name = *req.Name
	}
	if req.Location != nil {
		location = *req.Location
	}

	if name != branch.Name || location != branch.Location {
		exists, err := s.branchRepo.Exists(db, orgID, name, location, branchID)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		if exists {
			return nil, appErrors.ErrBranchAlreadyExists
		}
	}

	branch.Name = name
	branch.Location = location
	if err := s.branchRepo.Update(db, branch); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return branch, nil
}

func (s *OrganizationService) DeleteBranch(db *gorm.DB, p *auth.Principal, orgID, branchID uint) error {
	if _, err := s.getAuthorized(db, p, auth.OpOrganizationUpdate, orgID); err != nil {
		return err
	}

	if err := s.branchRepo.Delete(db, orgID, branchID); err != nil {
		if errors.Is(err, repositories.ErrBranchNotFound) {
			return appErrors.ErrBranchNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

// --- Devices ---

func (s *OrganizationService) CreateDevice(db *gorm.DB, p *auth.Principal, orgID uint, req dto.CreateDeviceRequest) (*models.Device, error) {
	if _, err := s.getAuthorized(db, p, auth.OpOrganizationUpdate, orgID); err != nil {
		return nil, err
	}

	if err := s.requireBranchInOrg(db, orgID, req.BranchID); err != nil {
		return nil, err
	}

	exists, err := s.deviceRepo.Exists(db, req.BranchID, req.Name, req.OS, "")
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if exists {
		return nil, appErrors.ErrDeviceAlreadyExists
	}

	device := &models.Device{
		ID:       uuid.NewString(),
		BranchID: req.BranchID,
		Name:     req.Name,
		OS:       req.OS,
		LastSeen: time.Now().UTC(),
		IsActive: true,
	}
	if err := s.deviceRepo.Create(db, device); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return device, nil
}

// ListDevices - устройства всех филиалов организации
func (s *OrganizationService) ListDevices(db *gorm.DB, p *auth.Principal, orgID uint) ([]models.Device, error) {
	if _, err := s.getAuthorized(db, p, auth.OpOrganizationRead, orgID); err != nil {
		return nil, err
	}

	devices, err := s.deviceRepo.ListByOrganization(db, orgID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return devices, nil
}

func (s *OrganizationService) UpdateDevice(db *gorm.DB, p *auth.Principal, orgID uint, deviceID string, req dto.UpdateDeviceRequest) (*models.Device, error) {
	if _, err := s.getAuthorized(db, p, auth.OpOrganizationUpdate, orgID); err != nil {
		return nil, err
	}

	device, err := s.deviceRepo.GetByID(db, deviceID)
	if err != nil {
		if errors.Is(err, repositories.ErrDeviceNotFound) {
			return nil, appErrors.ErrDeviceNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	// Устройство должно уже находиться в филиале этой организации
	if err := s.requireBranchInOrg(db, orgID, device.BranchID); err != nil {
		return nil, appErrors.ErrDeviceNotFound
	}

	branchID := device.BranchID
	name := device.Name
	osName := device.OS
	if req.BranchID != nil {
		if err := s.requireBranchInOrg(db, orgID, *req.BranchID); err != nil {
			return nil, err
		}
		branchID = *req.BranchID
	}
	if req.Name != nil {
		name = *req.Name
	}
	if req.OS != nil {
		osName = *req.OS
	}

	if branchID != device.BranchID || name != device.Name || osName != device.OS {
		exists, err := s.deviceRepo.Exists(db, branchID, name, osName, device.ID)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		if exists {
			return nil, appErrors.ErrDeviceAlreadyExists
		}
	}

	device.BranchID = branchID
	device.Name = name
	device.OS = osName
	if req.IsActive != nil {
		device.IsActive = *req.IsActive
	}

	if err := s.deviceRepo.Update(db, device); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return device, nil
}

func (s *OrganizationService) DeleteDevice(db *gorm.DB, p *auth.Principal, orgID uint, deviceID string) error {
	if _, err := s.getAuthorized(db, p, auth.OpOrganizationUpdate, orgID); err != nil {
		return err
	}

	device, err := s.deviceRepo.GetByID(db, deviceID)
	if err != nil {
		if errors.Is(err, repositories.ErrDeviceNotFound) {
			return appErrors.ErrDeviceNotFound
		}
		return appErrors.InternalError(err)
	}
	if err := s.requireBranchInOrg(db, orgID, device.BranchID); err != nil {
		return appErrors.ErrDeviceNotFound
	}

	if err := s.deviceRepo.Delete(db, deviceID); err != nil {
		if errors.Is(err, repositories.ErrDeviceNotFound) {
			return appErrors.ErrDeviceNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

// --- Add-ons ---

func (s *OrganizationService) CreateAddOn(db *gorm.DB, p *auth.Principal, orgID uint, req dto.CreateAddOnRequest) (*models.AddOn, error) {
	if _, err := s.getAuthorized(db, p, auth.OpOrganizationUpdate, orgID); err != nil {
		return nil, err
	}

	addOnType := models.AddOnType(req.Type)
	if !models.ValidAddOnType(addOnType) {
		return nil, appErrors.ValidationError(map[string]string{
			"type": "Must be one of: branch, device, waiter",
		})
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	addOn := &models.AddOn{
		ID:             uuid.NewString(),
		OrganizationID: orgID,
		Type:           addOnType,
		Quantity:       quantity,
		MonthlyPrice:   req.MonthlyPrice,
	}
	if err := s.addOnRepo.Create(db, addOn); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return addOn, nil
}

// ListAddOns - дополнения организации
func (s *OrganizationService) ListAddOns(db *gorm.DB, p *auth.Principal, orgID uint) ([]models.AddOn, error) {
	if _, err := s.getAuthorized(db, p, auth.OpOrganizationRead, orgID); err != nil {
		return nil, err
	}

	addOns, err := s.addOnRepo.ListByOrganization(db, orgID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return addOns, nil
}

func (s *OrganizationService) DeleteAddOn(db *gorm.DB, p *auth.Principal, orgID uint, addOnID string) error {
	if _, err := s.getAuthorized(db, p, auth.OpOrganizationUpdate, orgID); err != nil {
		return err
	}

	if err := s.addOnRepo.Delete(db, orgID, addOnID); err != nil {
		if errors.Is(err, repositories.ErrAddOnNotFound) {
			return appErrors.ErrAddOnNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

// --- helpers ---

// getAuthorized загружает организацию и проверяет права на операцию над ней
func (s *OrganizationService) getAuthorized(db *gorm.DB, p *auth.Principal, op auth.Operation, orgID uint) (*models.Organization, error) {
	org, err := s.orgRepo.GetByID(db, orgID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrganizationNotFound) {
			return nil, appErrors.ErrOrganizationNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if err := auth.Authorize(p, op, orgTarget(org)); err != nil {
		return nil, err
	}
	return org, nil
}

// requireBranchInOrg проверяет, что филиал принадлежит организации из пути
func (s *OrganizationService) requireBranchInOrg(db *gorm.DB, orgID, branchID uint) error {
	_, err := s.branchRepo.GetForOrganization(db, orgID, branchID)
	if err != nil {
		if errors.Is(err, repositories.ErrBranchNotFound) {
			return appErrors.ErrInvalidBranch
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func orgTarget(org *models.Organization) auth.Target {
	return auth.Target{
		OrganizationID: org.ID,
		RegistratorID:  org.RegistratorID,
	}
}

// buildOrgResponse: хеш пароля организации виден только админу
func buildOrgResponse(org models.Organization, p *auth.Principal) dto.OrganizationResponse {
	resp := dto.OrganizationResponse{Organization: org}
	if p != nil && p.Role == auth.RoleAdmin {
		resp.PasswordHash = org.PasswordHash
	}
	return resp
}
