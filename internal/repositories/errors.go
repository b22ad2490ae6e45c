package repositories

import "errors"

// Сигнальные ошибки слоя репозиториев.
// Сервисы переводят их в appErrors через errors.Is.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrBranchNotFound       = errors.New("branch not found")
	ErrDeviceNotFound       = errors.New("device not found")
	ErrAddOnNotFound        = errors.New("add-on not found")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrPayoutNotFound       = errors.New("payout not found")
	ErrRequestNotFound      = errors.New("registration request not found")
)
