package dto

// CreatePayoutRequest - выплата сотруднику (только админ)
type CreatePayoutRequest struct {
	UserID     uint    `json:"user_id" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Source     string  `json:"source" validate:"required"`
	PayoutDate string  `json:"payout_date" validate:"required"` // YYYY-MM-DD
}

// PayoutListQuery - фильтры списка выплат
type PayoutListQuery struct {
	UserID    uint   `form:"user_id"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}
