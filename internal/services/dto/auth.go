package dto

// LoginRequest - вход сотрудника или организации по телефону и паролю
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required,max=20"`
	Password string `json:"password" validate:"required,min=4,max=128"`
}

// TokenResponse - пара токенов, выдаваемая при логине и refresh
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	Role         string `json:"role"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegistrationSubmitRequest - публичная заявка на регистрацию регистратора
type RegistrationSubmitRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=255"`
	Phone    string `json:"phone" validate:"required,max=20"`
	Password string `json:"password" validate:"required,min=4,max=128"`
	Address  string `json:"address" validate:"max=1000"`
}
