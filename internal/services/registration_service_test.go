package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel_backend/internal/appErrors"
	"adminpanel_backend/internal/auth"
	"adminpanel_backend/internal/models"
	"adminpanel_backend/internal/repositories"
	"adminpanel_backend/internal/services/dto"
)

func newRegistrationService() *RegistrationService {
	return NewRegistrationService(
		repositories.NewRegistrationRepository(),
		repositories.NewUserRepository(),
	)
}

func TestRegistrationService_SubmitCreatesPending(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService()

	request, err := svc.Submit(db, dto.RegistrationSubmitRequest{
		FullName: "New Registrator",
		Phone:    "+998901112233",
		Password: "secret123",
		Address:  "Tashkent",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusPending, request.Status)
	assert.NotZero(t, request.ID)
}

func TestRegistrationService_SubmitDuplicatePhoneAllowed(t *testing.T) {
	// Уникальность телефона на подаче не проверяется -
	// конфликт всплывает только при одобрении
	db := newTestDB(t)
	svc := newRegistrationService()

	for i := 0; i < 2; i++ {
		_, err := svc.Submit(db, dto.RegistrationSubmitRequest{
			FullName: "Duplicate",
			Phone:    "+998900000000",
			Password: "secret123",
		})
		require.NoError(t, err)
	}
}

func TestRegistrationService_ApproveCreatesRegistrator(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService()

	request, err := svc.Submit(db, dto.RegistrationSubmitRequest{
		FullName: "Approved One",
		Phone:    "+998901234567",
		Password: "plainpass",
	})
	require.NoError(t, err)

	user, err := svc.Approve(db, adminPrincipal(), dto.ApproveRegistrationRequest{
		ID:              request.ID,
		SharePercentage: 15,
	})
	require.NoError(t, err)

	assert.Equal(t, models.UserRoleRegistrator, user.Role)
	assert.Equal(t, float64(15), user.SharePercentage)
	assert.NotEqual(t, "plainpass", user.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("plainpass", user.PasswordHash))

	var stored models.RegistrationRequest
	require.NoError(t, db.First(&stored, request.ID).Error)
	assert.Equal(t, models.RegistrationStatusApproved, stored.Status)
}

func TestRegistrationService_ApprovePhoneConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService()

	// Занимаем телефон заранее: одобрение отказывает ещё до создания User
	require.NoError(t, db.Create(&models.User{
		FullName:     "Existing",
		Phone:        "+998905555555",
		PasswordHash: "x",
		Role:         models.UserRoleRegistrator,
	}).Error)

	request, err := svc.Submit(db, dto.RegistrationSubmitRequest{
		FullName: "Conflicting",
		Phone:    "+998905555555",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Approve(db, adminPrincipal(), dto.ApproveRegistrationRequest{
		ID:              request.ID,
		SharePercentage: 10,
	})
	assert.ErrorIs(t, err, appErrors.ErrPhoneAlreadyExists)

	// Заявка осталась pending, новый сотрудник не появился
	var stored models.RegistrationRequest
	require.NoError(t, db.First(&stored, request.ID).Error)
	assert.Equal(t, models.RegistrationStatusPending, stored.Status)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(1), userCount)
}

func TestRegistrationService_ApproveRollsBackUserOnFailure(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService()

	request, err := svc.Submit(db, dto.RegistrationSubmitRequest{
		FullName: "Rolled Back",
		Phone:    "+998906666666",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Валим смену статуса заявки, которая идет после вставки User:
	// транзакция обязана откатить уже созданного сотрудника
	require.NoError(t, db.Exec(`
		CREATE TRIGGER block_approval BEFORE UPDATE ON registration_requests
		WHEN NEW.status = 'approved'
		BEGIN
			SELECT RAISE(ABORT, 'approval blocked');
		END`).Error)

	_, err = svc.Approve(db, adminPrincipal(), dto.ApproveRegistrationRequest{
		ID:              request.ID,
		SharePercentage: 10,
	})
	require.Error(t, err)

	require.NoError(t, db.Exec(`DROP TRIGGER block_approval`).Error)

	var stored models.RegistrationRequest
	require.NoError(t, db.First(&stored, request.ID).Error)
	assert.Equal(t, models.RegistrationStatusPending, stored.Status)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Where("phone = ?", "+998906666666").Count(&userCount).Error)
	assert.Zero(t, userCount)
}

func TestRegistrationService_ApproveNotPending(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService()

	request, err := svc.Submit(db, dto.RegistrationSubmitRequest{
		FullName: "Once",
		Phone:    "+998907777777",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Approve(db, adminPrincipal(), dto.ApproveRegistrationRequest{ID: request.ID, SharePercentage: 5})
	require.NoError(t, err)

	// Повторное одобрение: терминальная заявка неотличима от несуществующей
	_, err = svc.Approve(db, adminPrincipal(), dto.ApproveRegistrationRequest{ID: request.ID, SharePercentage: 5})
	assert.ErrorIs(t, err, appErrors.ErrRequestNotFound)

	_, err = svc.Approve(db, adminPrincipal(), dto.ApproveRegistrationRequest{ID: 9999, SharePercentage: 5})
	assert.ErrorIs(t, err, appErrors.ErrRequestNotFound)
}

func TestRegistrationService_Reject(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService()

	request, err := svc.Submit(db, dto.RegistrationSubmitRequest{
		FullName: "Rejected",
		Phone:    "+998908888888",
		Password: "secret123",
	})
	require.NoError(t, err)

	rejected, err := svc.Reject(db, adminPrincipal(), request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusRejected, rejected.Status)

	// Отклоненную заявку нельзя одобрить
	_, err = svc.Approve(db, adminPrincipal(), dto.ApproveRegistrationRequest{ID: request.ID, SharePercentage: 5})
	assert.ErrorIs(t, err, appErrors.ErrRequestNotFound)
}

func TestRegistrationService_DecideRequiresAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := newRegistrationService()

	request, err := svc.Submit(db, dto.RegistrationSubmitRequest{
		FullName: "Pending",
		Phone:    "+998909999999",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Approve(db, moderatorPrincipal(), dto.ApproveRegistrationRequest{ID: request.ID, SharePercentage: 5})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	_, err = svc.Reject(db, moderatorPrincipal(), request.ID)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	// Список доступен и модератору
	requests, err := svc.List(db, moderatorPrincipal(), "")
	require.NoError(t, err)
	assert.Len(t, requests, 1)
}
