package dto

import "adminpanel_backend/internal/models"

// CreateOrganizationRequest - создание организации сотрудником
type CreateOrganizationRequest struct {
	Name               string  `json:"name" validate:"required,min=2,max=255"`
	Phone              string  `json:"phone" validate:"required,max=20"`
	Boss               string  `json:"boss" validate:"required,max=255"`
	Password           string  `json:"password" validate:"required,min=4,max=128"`
	Plan               string  `json:"plan" validate:"max=50"`
	RegistratorID      *uint   `json:"registrator_id"`
	RegistrationDate   *string `json:"registration_date"` // YYYY-MM-DD, по умолчанию сегодня
	PlanExpirationDays *int    `json:"plan_expiration_days" validate:"omitempty,gte=0"`
}

type UpdateOrganizationRequest struct {
	Name               *string `json:"name" validate:"omitempty,min=2,max=255"`
	Phone              *string `json:"phone" validate:"omitempty,max=20"`
	Boss               *string `json:"boss" validate:"omitempty,max=255"`
	Password           *string `json:"password" validate:"omitempty,min=4,max=128"`
	Plan               *string `json:"plan" validate:"omitempty,max=50"`
	RegistratorID      *uint   `json:"registrator_id"`
	PlanExpirationDays *int    `json:"plan_expiration_days" validate:"omitempty,gte=0"`
	IsActive           *bool   `json:"is_active"`
}

// OrganizationResponse - организация в выдаче API.
// PasswordHash заполняется только для админа.
type OrganizationResponse struct {
	models.Organization
	PasswordHash string `json:"password_hash,omitempty"`
}

// CreateBranchRequest - филиал внутри организации
type CreateBranchRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Location string `json:"location" validate:"required,min=1,max=1000"`
}

type UpdateBranchRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
	Location *string `json:"location" validate:"omitempty,min=1,max=1000"`
}

// CreateDeviceRequest - устройство; branch_id обязан принадлежать
// организации из пути
type CreateDeviceRequest struct {
	BranchID uint   `json:"branch_id" validate:"required"`
	Name     string `json:"name" validate:"required,min=1,max=255"`
	OS       string `json:"os" validate:"max=100"`
}

type UpdateDeviceRequest struct {
	BranchID *uint   `json:"branch_id"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
	OS       *string `json:"os" validate:"omitempty,max=100"`
	IsActive *bool   `json:"is_active"`
}

// CreateAddOnRequest - платное дополнение к тарифу
type CreateAddOnRequest struct {
	Type         string  `json:"type" validate:"required"`
	Quantity     int     `json:"quantity" validate:"omitempty,gte=1"`
	MonthlyPrice float64 `json:"monthly_price" validate:"gte=0"`
}
