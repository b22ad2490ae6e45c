package models

import "time"

type PaymentSource string

const (
	PaymentSourceSubscription PaymentSource = "Subscription"
	PaymentSourceClick        PaymentSource = "Click"
	PaymentSourcePayme        PaymentSource = "Payme"
)

func ValidPaymentSource(s PaymentSource) bool {
	switch s {
	case PaymentSourceSubscription, PaymentSourceClick, PaymentSourcePayme:
		return true
	}
	return false
}

// Payment - поступление от организации. Неизменяемо после создания
// (update-операции нет намеренно).
type Payment struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	OrganizationID uint          `gorm:"not null;index" json:"organization_id"`
	Amount         float64       `gorm:"type:numeric(12,2);not null" json:"amount"`
	Source         PaymentSource `gorm:"size:50;not null" json:"source"`
	PaymentDate    Date          `gorm:"not null;index" json:"payment_date"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"created_at"`
}
