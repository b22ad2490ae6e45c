package models

import "gorm.io/datatypes"

// CustomPlan - тарифный план с лимитами и фичами.
// Чтение планов публичное (страница прайсинга), запись - только админ.
type CustomPlan struct {
	BaseModel
	Name             string                       `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Branches         int                          `gorm:"default:1" json:"branches"`
	DevicesPerBranch int                          `gorm:"default:1" json:"devices_per_branch"`
	Waiters          int                          `gorm:"default:0" json:"waiters"`
	KDS              bool                         `gorm:"column:kds;default:false" json:"kds"`
	WarehouseControl string                       `gorm:"size:20;default:'none'" json:"warehouse_control"`
	TechCard         string                       `gorm:"size:20;default:'none'" json:"tech_card"`
	ChatSupport      bool                         `gorm:"default:false" json:"chat_support"`
	APIIntegrations  datatypes.JSONSlice[string]  `gorm:"column:api_integrations" json:"api_integrations"`
	PhoneSupport247  bool                         `gorm:"column:phone_support_247;default:false" json:"phone_support_247"`
	PersonalManager  bool                         `gorm:"default:false" json:"personal_manager"`
	MonthlyPrice     float64                      `gorm:"type:numeric(12,2);default:0" json:"monthly_price"`
	YearlyPrice      float64                      `gorm:"type:numeric(12,2);default:0" json:"yearly_price"`
	Flag             string                       `gorm:"size:50" json:"flag,omitempty"`
	Color            string                       `gorm:"size:7" json:"color,omitempty"`
	IsActive         bool                         `gorm:"default:true" json:"is_active"`
}
