package services

import (
	"errors"

	"gorm.io/gorm"

	"adminpanel_backend/internal/appErrors"
	"adminpanel_backend/internal/auth"
	"adminpanel_backend/internal/logger"
	"adminpanel_backend/internal/repositories"
	"adminpanel_backend/internal/services/dto"
)

// AuthService - вход сотрудников и организаций, обновление токенов
type AuthService struct {
	userRepo     repositories.UserRepository
	orgRepo      repositories.OrganizationRepository
	tokenManager *auth.TokenManager
}

func NewAuthService(
	userRepo repositories.UserRepository,
	orgRepo repositories.OrganizationRepository,
	tokenManager *auth.TokenManager,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		orgRepo:      orgRepo,
		tokenManager: tokenManager,
	}
}

// StaffLogin - вход сотрудника по телефону и паролю.
// Несуществующий телефон и неверный пароль дают одинаковый ответ.
func (s *AuthService) StaffLogin(db *gorm.DB, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByPhone(db, req.Phone)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.InternalError(err)
	}

	if !user.IsActive || !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	logger.Info("Staff login", "user_id", user.ID, "role", user.Role)
	return s.issueTokens(user.ID, string(user.Role))
}

// OrganizationLogin - вход организации по своим учетным данным.
// Выдает токен с ролью "organization" и sub = ID организации.
func (s *AuthService) OrganizationLogin(db *gorm.DB, req dto.LoginRequest) (*dto.TokenResponse, error) {
	org, err := s.orgRepo.GetByPhone(db, req.Phone)
	if err != nil {
		if errors.Is(err, repositories.ErrOrganizationNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.InternalError(err)
	}

	if !org.IsActive || org.PasswordHash == "" ||
		!auth.CheckPasswordHash(req.Password, org.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	logger.Info("Organization login", "organization_id", org.ID)
	return s.issueTokens(org.ID, auth.RoleOrganization)
}

// Refresh выпускает новую пару токенов по действующему refresh-токену
func (s *AuthService) Refresh(req dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := s.tokenManager.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	subjectID, parseErr := parseSubject(claims.Subject)
	if parseErr != nil {
		return nil, appErrors.ErrInvalidToken
	}

	return s.issueTokens(subjectID, claims.Role)
}

func (s *AuthService) issueTokens(subjectID uint, role string) (*dto.TokenResponse, error) {
	accessToken, err := s.tokenManager.GenerateAccessToken(subjectID, role)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	refreshToken, err := s.tokenManager.GenerateRefreshToken(subjectID, role)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		Role:         role,
	}, nil
}
