package models

import "time"

type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

// RegistrationRequest - заявка на регистрацию нового регистратора.
// pending -> approved | rejected, оба состояния терминальные.
//
// Пароль хранится в открытом виде до одобрения заявки и хешируется
// только при создании User - поведение унаследовано, см. DESIGN.md.
type RegistrationRequest struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	FullName  string             `gorm:"size:255;not null" json:"full_name"`
	Phone     string             `gorm:"size:20;not null" json:"phone"`
	Password  string             `gorm:"size:255;not null" json:"-"`
	Address   string             `gorm:"type:text" json:"address,omitempty"`
	Status    RegistrationStatus `gorm:"size:20;default:'pending'" json:"status"`
	CreatedAt time.Time          `gorm:"autoCreateTime" json:"created_at"`
}
