package models

import "time"

type AddOnType string

const (
	AddOnTypeBranch AddOnType = "branch"
	AddOnTypeDevice AddOnType = "device"
	AddOnTypeWaiter AddOnType = "waiter"
)

func ValidAddOnType(t AddOnType) bool {
	switch t {
	case AddOnTypeBranch, AddOnTypeDevice, AddOnTypeWaiter:
		return true
	}
	return false
}

// AddOn - платное дополнение к тарифу организации (доп. филиал,
// устройство или официант сверх лимитов плана).
type AddOn struct {
	ID             string    `gorm:"size:255;primaryKey" json:"id"`
	OrganizationID uint      `gorm:"not null;index" json:"organization_id"`
	Type           AddOnType `gorm:"type:varchar(20);not null" json:"type"`
	Quantity       int       `gorm:"not null;default:1" json:"quantity"`
	MonthlyPrice   float64   `gorm:"type:numeric(12,2);not null;default:0" json:"monthly_price"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
