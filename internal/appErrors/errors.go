package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithDetails возвращает копию, чтобы не мутировать предопределенные ошибки.
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// Для маршалинга в JSON
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация: 401 - нет/невалидный токен, 403 - роль или ownership
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid phone or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Not found
	ErrUserNotFound         = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrOrganizationNotFound = New(CodeOrganizationNotFound, "Organization not found", http.StatusNotFound)
	ErrBranchNotFound       = New(CodeBranchNotFound, "Branch not found", http.StatusNotFound)
	ErrDeviceNotFound       = New(CodeDeviceNotFound, "Device not found", http.StatusNotFound)
	ErrAddOnNotFound        = New(CodeAddOnNotFound, "Add-on not found", http.StatusNotFound)
	ErrPlanNotFound         = New(CodePlanNotFound, "Plan not found", http.StatusNotFound)
	ErrPayoutNotFound       = New(CodePayoutNotFound, "Payout not found", http.StatusNotFound)
	ErrRequestNotFound      = New(CodeRequestNotFound, "Request not found or not pending", http.StatusNotFound)

	// Конфликты
	ErrPhoneAlreadyExists  = New(CodePhoneAlreadyExists, "Phone number already exists", http.StatusConflict)
	ErrBranchAlreadyExists = New(CodeBranchAlreadyExists, "Branch with this name and location already exists in this organization", http.StatusConflict)
	ErrDeviceAlreadyExists = New(CodeDeviceAlreadyExists, "Device with this name and OS already exists in this branch", http.StatusConflict)
	ErrPlanAlreadyExists   = New(CodePlanAlreadyExists, "Plan with this name already exists", http.StatusConflict)
	ErrInvalidBranch       = New(CodeInvalidBranch, "Branch does not belong to this organization", http.StatusBadRequest)

	// Валидация и системные
	ErrValidationFailed  = New(CodeValidationFailed, "Invalid input data", http.StatusUnprocessableEntity)
	ErrInvalidRole       = New(CodeInvalidRole, "Invalid user role", http.StatusUnprocessableEntity)
	ErrInvalidSource     = New(CodeInvalidSource, "Invalid source value", http.StatusUnprocessableEntity)
	ErrRateLimitExceeded = New(CodeRateLimitExceeded, "Too many requests", http.StatusTooManyRequests)
)

// Функции-помощники для создания ошибок с деталями
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}
