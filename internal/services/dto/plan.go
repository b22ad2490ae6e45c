package dto

// CreatePlanRequest - тарифный план (только админ)
type CreatePlanRequest struct {
	Name             string   `json:"name" validate:"required,min=1,max=100"`
	Branches         int      `json:"branches" validate:"gte=0"`
	DevicesPerBranch int      `json:"devices_per_branch" validate:"gte=0"`
	Waiters          int      `json:"waiters" validate:"gte=0"`
	KDS              bool     `json:"kds"`
	WarehouseControl string   `json:"warehouse_control" validate:"max=20"`
	TechCard         string   `json:"tech_card" validate:"max=20"`
	ChatSupport      bool     `json:"chat_support"`
	APIIntegrations  []string `json:"api_integrations"`
	PhoneSupport247  bool     `json:"phone_support_247"`
	PersonalManager  bool     `json:"personal_manager"`
	MonthlyPrice     float64  `json:"monthly_price" validate:"gte=0"`
	YearlyPrice      float64  `json:"yearly_price" validate:"gte=0"`
	Flag             string   `json:"flag" validate:"max=50"`
	Color            string   `json:"color" validate:"max=7"`
	IsActive         *bool    `json:"is_active"`
}

type UpdatePlanRequest struct {
	Name             *string   `json:"name" validate:"omitempty,min=1,max=100"`
	Branches         *int      `json:"branches" validate:"omitempty,gte=0"`
	DevicesPerBranch *int      `json:"devices_per_branch" validate:"omitempty,gte=0"`
	Waiters          *int      `json:"waiters" validate:"omitempty,gte=0"`
	KDS              *bool     `json:"kds"`
	WarehouseControl *string   `json:"warehouse_control" validate:"omitempty,max=20"`
	TechCard         *string   `json:"tech_card" validate:"omitempty,max=20"`
	ChatSupport      *bool     `json:"chat_support"`
	APIIntegrations  *[]string `json:"api_integrations"`
	PhoneSupport247  *bool     `json:"phone_support_247"`
	PersonalManager  *bool     `json:"personal_manager"`
	MonthlyPrice     *float64  `json:"monthly_price" validate:"omitempty,gte=0"`
	YearlyPrice      *float64  `json:"yearly_price" validate:"omitempty,gte=0"`
	Flag             *string   `json:"flag" validate:"omitempty,max=50"`
	Color            *string   `json:"color" validate:"omitempty,max=7"`
	IsActive         *bool     `json:"is_active"`
}
