package models

// Organization - заведение-клиент (ресторан, кафе и т.д.).
// registrator_id - сотрудник, который привёл организацию и получает долю.
type Organization struct {
	BaseModel
	Name               string `gorm:"size:255;not null" json:"name"`
	Phone              string `gorm:"size:20;not null;index" json:"phone"`
	Boss               string `gorm:"size:255;not null" json:"boss"`
	PasswordHash       string `gorm:"size:255" json:"-"`
	Plan               string `gorm:"size:50;not null;default:'Free'" json:"plan"`
	RegistratorID      *uint  `gorm:"index" json:"registrator_id"`
	RegistrationDate   Date   `gorm:"not null" json:"registration_date"`
	PlanExpirationDays int    `gorm:"default:30" json:"plan_expiration_days"`
	IsActive           bool   `gorm:"default:true" json:"is_active"`

	// Relations (удаляются каскадно вместе с организацией)
	Branches []Branch  `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"branches"`
	AddOns   []AddOn   `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"add_ons"`
	Payments []Payment `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"-"`
}
