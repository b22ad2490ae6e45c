package dto

// ApproveRegistrationRequest - одобрение заявки: задает долю будущего регистратора
type ApproveRegistrationRequest struct {
	ID              uint    `json:"id" validate:"required"`
	SharePercentage float64 `json:"share_percentage" validate:"gte=0,lte=100"`
}

// RejectRegistrationRequest - отклонение заявки
type RejectRegistrationRequest struct {
	ID uint `json:"id" validate:"required"`
}
