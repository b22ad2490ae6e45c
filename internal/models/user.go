package models

type UserRole string

const (
	UserRoleAdmin       UserRole = "admin"
	UserRoleModerator   UserRole = "moderator"
	UserRoleRegistrator UserRole = "registrator"
)

// ValidUserRole проверяет, входит ли роль в допустимый набор для сотрудников.
func ValidUserRole(role UserRole) bool {
	switch role {
	case UserRoleAdmin, UserRoleModerator, UserRoleRegistrator:
		return true
	}
	return false
}

// User - сотрудник админ-панели (админ, модератор или регистратор).
// share_percentage - доля сотрудника от общих поступлений, в процентах.
type User struct {
	BaseModel
	FullName        string   `gorm:"size:255;not null" json:"full_name"`
	Phone           string   `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	PasswordHash    string   `gorm:"size:255;not null" json:"-"`
	Address         string   `gorm:"type:text" json:"address,omitempty"`
	Role            UserRole `gorm:"type:varchar(20);not null;default:'registrator'" json:"role"`
	SharePercentage float64  `gorm:"type:numeric(5,2);default:0" json:"share_percentage"`
	IsActive        bool     `gorm:"default:true" json:"is_active"`

	// Relations
	Payouts []UserPayout `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
