package dto

import "adminpanel_backend/internal/models"

// CreatePaymentRequest - регистрация поступления от организации
type CreatePaymentRequest struct {
	OrganizationID uint    `json:"organization_id" validate:"required"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Source         string  `json:"source" validate:"required"`
	PaymentDate    string  `json:"payment_date" validate:"required"` // YYYY-MM-DD
}

// PaymentListQuery - фильтры списка платежей
type PaymentListQuery struct {
	OrganizationID uint   `form:"organization_id"`
	Source         string `form:"source"`
	StartDate      string `form:"start_date"`
	EndDate        string `form:"end_date"`
	Limit          int    `form:"limit"`
	Offset         int    `form:"offset"`
}

// SverkaResponse - сверка платежей организации за период
type SverkaResponse struct {
	OrganizationID   uint             `json:"organization_id"`
	OrganizationName string           `json:"organization_name"`
	StartDate        models.Date      `json:"start_date"`
	EndDate          models.Date      `json:"end_date"`
	TotalAmount      float64          `json:"total_amount"`
	PaymentCount     int              `json:"payment_count"`
	Payments         []models.Payment `json:"payments"`
}
