package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"adminpanel_backend/internal/appErrors"
	"adminpanel_backend/internal/auth"
	"adminpanel_backend/internal/models"
	"adminpanel_backend/internal/repositories"
	"adminpanel_backend/internal/services/dto"
)

func newAuthService() *AuthService {
	tm := auth.NewTokenManager("test-secret", 60, 1440)
	return NewAuthService(
		repositories.NewUserRepository(),
		repositories.NewOrganizationRepository(),
		tm,
	)
}

func seedStaff(t *testing.T, db *gorm.DB, phone, password string, role models.UserRole, active bool) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		FullName:     "Staff " + phone,
		Phone:        phone,
		PasswordHash: hash,
		Role:         role,
		IsActive:     active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestAuthService_StaffLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()
	seedStaff(t, db, "+998900000001", "correct-pass", models.UserRoleModerator, true)

	tokens, err := svc.StaffLogin(db, dto.LoginRequest{Phone: "+998900000001", Password: "correct-pass"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", tokens.TokenType)
	assert.Equal(t, string(models.UserRoleModerator), tokens.Role)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	// Неверный пароль и несуществующий телефон неразличимы
	_, err = svc.StaffLogin(db, dto.LoginRequest{Phone: "+998900000001", Password: "wrong"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
	_, err = svc.StaffLogin(db, dto.LoginRequest{Phone: "+998999999999", Password: "correct-pass"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestAuthService_StaffLoginInactive(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()
	seedStaff(t, db, "+998900000002", "correct-pass", models.UserRoleRegistrator, false)

	_, err := svc.StaffLogin(db, dto.LoginRequest{Phone: "+998900000002", Password: "correct-pass"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestAuthService_OrganizationLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	hash, err := auth.HashPassword("orgpass")
	require.NoError(t, err)
	org := &models.Organization{
		Name: "Cafe", Phone: "+998710000001", Boss: "Boss",
		PasswordHash: hash, Plan: "Free",
		RegistrationDate: models.Today(), IsActive: true,
	}
	require.NoError(t, db.Create(org).Error)

	tokens, err := svc.OrganizationLogin(db, dto.LoginRequest{Phone: "+998710000001", Password: "orgpass"})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleOrganization, tokens.Role)

	// Организация без пароля логиниться не может
	require.NoError(t, db.Create(&models.Organization{
		Name: "No Pass", Phone: "+998710000002", Boss: "Boss",
		Plan: "Free", RegistrationDate: models.Today(), IsActive: true,
	}).Error)
	_, err = svc.OrganizationLogin(db, dto.LoginRequest{Phone: "+998710000002", Password: ""})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestAuthService_Refresh(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()
	seedStaff(t, db, "+998900000003", "correct-pass", models.UserRoleAdmin, true)

	tokens, err := svc.StaffLogin(db, dto.LoginRequest{Phone: "+998900000003", Password: "correct-pass"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(dto.RefreshRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.Equal(t, string(models.UserRoleAdmin), refreshed.Role)
	assert.NotEmpty(t, refreshed.AccessToken)

	// Access-токен не годится для обновления
	_, err = svc.Refresh(dto.RefreshRequest{RefreshToken: tokens.AccessToken})
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)

	_, err = svc.Refresh(dto.RefreshRequest{RefreshToken: "not-a-token"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}
