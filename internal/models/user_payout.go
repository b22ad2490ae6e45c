package models

import "time"

type PayoutSource string

// Источники выплат: перевод или наличные.
const (
	PayoutSourceTransfer PayoutSource = "O'tkazma"
	PayoutSourceCash     PayoutSource = "Naqd pul"
)

func ValidPayoutSource(s PayoutSource) bool {
	switch s {
	case PayoutSourceTransfer, PayoutSourceCash:
		return true
	}
	return false
}

// UserPayout - выплата сотруднику из его накопленного баланса.
// Неизменяема после создания.
type UserPayout struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	UserID     uint         `gorm:"not null;index" json:"user_id"`
	Amount     float64      `gorm:"type:numeric(12,2);not null" json:"amount"`
	Source     PayoutSource `gorm:"size:20;not null" json:"source"`
	PayoutDate Date         `gorm:"not null;index" json:"payout_date"`
	CreatedAt  time.Time    `gorm:"autoCreateTime" json:"created_at"`
}
