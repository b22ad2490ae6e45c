package dto

// CreateUserRequest - создание сотрудника админом
type CreateUserRequest struct {
	FullName        string  `json:"full_name" validate:"required,min=2,max=255"`
	Phone           string  `json:"phone" validate:"required,max=20"`
	Password        string  `json:"password" validate:"required,min=4,max=128"`
	Address         string  `json:"address" validate:"max=1000"`
	Role            string  `json:"role" validate:"required"`
	SharePercentage float64 `json:"share_percentage" validate:"gte=0,lte=100"`
}

// UpdateUserRequest - частичное обновление, nil-поля не трогаем
type UpdateUserRequest struct {
	FullName        *string  `json:"full_name" validate:"omitempty,min=2,max=255"`
	Phone           *string  `json:"phone" validate:"omitempty,max=20"`
	Password        *string  `json:"password" validate:"omitempty,min=4,max=128"`
	Address         *string  `json:"address" validate:"omitempty,max=1000"`
	Role            *string  `json:"role"`
	SharePercentage *float64 `json:"share_percentage" validate:"omitempty,gte=0,lte=100"`
	IsActive        *bool    `json:"is_active"`
}

// UserBalance - расчетный баланс сотрудника.
// TotalEarnings - общесистемная сумма платежей, одинакова для всех.
type UserBalance struct {
	UserID          uint    `json:"user_id"`
	FullName        string  `json:"full_name"`
	Role            string  `json:"role"`
	SharePercentage float64 `json:"share_percentage"`
	TotalEarnings   float64 `json:"total_earnings"`
	TotalPayouts    float64 `json:"total_payouts"`
	Balance         float64 `json:"balance"`
}
