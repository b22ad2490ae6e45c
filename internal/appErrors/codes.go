package appErrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_ERROR"
	CodeInvalidRole      ErrorCode = "INVALID_ROLE"
	CodeInvalidSource    ErrorCode = "INVALID_SOURCE"

	// Ресурсы
	CodeUserNotFound         ErrorCode = "USER_NOT_FOUND"
	CodeOrganizationNotFound ErrorCode = "ORGANIZATION_NOT_FOUND"
	CodeBranchNotFound       ErrorCode = "BRANCH_NOT_FOUND"
	CodeDeviceNotFound       ErrorCode = "DEVICE_NOT_FOUND"
	CodeAddOnNotFound        ErrorCode = "ADDON_NOT_FOUND"
	CodePlanNotFound         ErrorCode = "PLAN_NOT_FOUND"
	CodePayoutNotFound       ErrorCode = "PAYOUT_NOT_FOUND"
	CodeRequestNotFound      ErrorCode = "REGISTRATION_REQUEST_NOT_FOUND"

	// Конфликты уникальности
	CodePhoneAlreadyExists  ErrorCode = "PHONE_ALREADY_EXISTS"
	CodeBranchAlreadyExists ErrorCode = "BRANCH_ALREADY_EXISTS"
	CodeDeviceAlreadyExists ErrorCode = "DEVICE_ALREADY_EXISTS"
	CodePlanAlreadyExists   ErrorCode = "PLAN_ALREADY_EXISTS"
	CodeInvalidBranch       ErrorCode = "INVALID_BRANCH"

	// Системные ошибки
	CodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	CodeInternalError     ErrorCode = "INTERNAL_ERROR"
)
