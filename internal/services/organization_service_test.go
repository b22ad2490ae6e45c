package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"adminpanel_backend/internal/appErrors"
	"adminpanel_backend/internal/models"
	"adminpanel_backend/internal/repositories"
	"adminpanel_backend/internal/services/dto"
)

func newOrganizationService() *OrganizationService {
	return NewOrganizationService(
		repositories.NewOrganizationRepository(),
		repositories.NewBranchRepository(),
		repositories.NewDeviceRepository(),
		repositories.NewAddOnRepository(),
	)
}

func createTestOrg(t *testing.T, db *gorm.DB, svc *OrganizationService, phone string) *dto.OrganizationResponse {
	t.Helper()
	org, err := svc.Create(db, adminPrincipal(), dto.CreateOrganizationRequest{
		Name:     "Test Cafe",
		Phone:    phone,
		Boss:     "Boss Person",
		Password: "orgpass123",
	})
	require.NoError(t, err)
	return org
}

func TestOrganizationService_CreateDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := newOrganizationService()

	org := createTestOrg(t, db, svc, "+998711234567")
	assert.Equal(t, "Free", org.Plan)
	assert.Equal(t, 30, org.PlanExpirationDays)
	assert.True(t, org.IsActive)
	assert.False(t, org.RegistrationDate.IsZero())
	// Хеш виден админу и не равен сырому паролю
	assert.NotEmpty(t, org.PasswordHash)
	assert.NotEqual(t, "orgpass123", org.PasswordHash)
}

func TestOrganizationService_CreatePhoneConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newOrganizationService()

	createTestOrg(t, db, svc, "+998711111111")

	_, err := svc.Create(db, adminPrincipal(), dto.CreateOrganizationRequest{
		Name:     "Another",
		Phone:    "+998711111111",
		Boss:     "Other Boss",
		Password: "pass1234",
	})
	assert.ErrorIs(t, err, appErrors.ErrPhoneAlreadyExists)
}

func TestOrganizationService_RegistratorScoping(t *testing.T) {
	db := newTestDB(t)
	svc := newOrganizationService()

	regID := uint(3)
	own, err := svc.Create(db, adminPrincipal(), dto.CreateOrganizationRequest{
		Name: "Own", Phone: "+99871000001", Boss: "B", Password: "pass1234",
		RegistratorID: &regID,
	})
	require.NoError(t, err)

	foreign := createTestOrg(t, db, svc, "+99871000002")

	// Список регистратора содержит только его организации
	list, err := svc.List(db, registratorPrincipal(3), repositories.OrganizationFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, own.ID, list[0].ID)

	// Чтение своей - можно, чужой - 403
	_, err = svc.Get(db, registratorPrincipal(3), own.ID)
	assert.NoError(t, err)
	_, err = svc.Get(db, registratorPrincipal(3), foreign.ID)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestOrganizationService_OrganizationSelfUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := newOrganizationService()

	org := createTestOrg(t, db, svc, "+99871000003")
	other := createTestOrg(t, db, svc, "+99871000004")

	name := "Renamed by owner"
	updated, err := svc.Update(db, organizationPrincipal(org.ID), org.ID, dto.UpdateOrganizationRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)

	// Чужую организацию трогать нельзя
	_, err = svc.Update(db, organizationPrincipal(org.ID), other.ID, dto.UpdateOrganizationRequest{Name: &name})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	// Хеш пароля не отдается организации
	got, err := svc.Get(db, organizationPrincipal(org.ID), org.ID)
	require.NoError(t, err)
	assert.Empty(t, got.PasswordHash)
}

func TestOrganizationService_BranchUniqueness(t *testing.T) {
	db := newTestDB(t)
	svc := newOrganizationService()

	org := createTestOrg(t, db, svc, "+99871000005")

	req := dto.CreateBranchRequest{Name: "Main", Location: "Center"}
	_, err := svc.CreateBranch(db, adminPrincipal(), org.ID, req)
	require.NoError(t, err)

	_, err = svc.CreateBranch(db, adminPrincipal(), org.ID, req)
	assert.ErrorIs(t, err, appErrors.ErrBranchAlreadyExists)

	// Та же пара (name, location) в другой организации - не конфликт
	other := createTestOrg(t, db, svc, "+99871000006")
	_, err = svc.CreateBranch(db, adminPrincipal(), other.ID, req)
	assert.NoError(t, err)
}

func TestOrganizationService_DeviceBranchValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newOrganizationService()

	org := createTestOrg(t, db, svc, "+99871000007")
	other := createTestOrg(t, db, svc, "+99871000008")

	branch, err := svc.CreateBranch(db, adminPrincipal(), org.ID, dto.CreateBranchRequest{Name: "Main", Location: "Center"})
	require.NoError(t, err)

	// Филиал чужой организации - Invalid branch
	_, err = svc.CreateDevice(db, adminPrincipal(), other.ID, dto.CreateDeviceRequest{
		BranchID: branch.ID, Name: "Kassa", OS: "android",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidBranch)

	device, err := svc.CreateDevice(db, adminPrincipal(), org.ID, dto.CreateDeviceRequest{
		BranchID: branch.ID, Name: "Kassa", OS: "android",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, device.ID)

	// Дубликат (branch, name, os)
	_, err = svc.CreateDevice(db, adminPrincipal(), org.ID, dto.CreateDeviceRequest{
		BranchID: branch.ID, Name: "Kassa", OS: "android",
	})
	assert.ErrorIs(t, err, appErrors.ErrDeviceAlreadyExists)

	// Другая ОС - не дубликат
	_, err = svc.CreateDevice(db, adminPrincipal(), org.ID, dto.CreateDeviceRequest{
		BranchID: branch.ID, Name: "Kassa", OS: "ios",
	})
	assert.NoError(t, err)
}

func TestOrganizationService_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	svc := newOrganizationService()

	org := createTestOrg(t, db, svc, "+99871000009")
	branch, err := svc.CreateBranch(db, adminPrincipal(), org.ID, dto.CreateBranchRequest{Name: "Main", Location: "Center"})
	require.NoError(t, err)
	_, err = svc.CreateDevice(db, adminPrincipal(), org.ID, dto.CreateDeviceRequest{BranchID: branch.ID, Name: "Kassa", OS: "android"})
	require.NoError(t, err)
	_, err = svc.CreateAddOn(db, adminPrincipal(), org.ID, dto.CreateAddOnRequest{Type: "device", Quantity: 2, MonthlyPrice: 10000})
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Payment{
		OrganizationID: org.ID, Amount: 500, Source: models.PaymentSourceClick,
		PaymentDate: mustDate(t, "2025-01-15"),
	}).Error)

	// Удаление организации доступно только админу
	err = svc.Delete(db, moderatorPrincipal(), org.ID)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	require.NoError(t, svc.Delete(db, adminPrincipal(), org.ID))

	for _, model := range []interface{}{
		&models.Branch{}, &models.Device{}, &models.AddOn{}, &models.Payment{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	}
}

func TestOrganizationService_GetByPhone(t *testing.T) {
	db := newTestDB(t)
	svc := newOrganizationService()

	org := createTestOrg(t, db, svc, "+99871000010")

	found, err := svc.GetByPhone(db, adminPrincipal(), "+99871000010")
	require.NoError(t, err)
	assert.Equal(t, org.ID, found.ID)

	_, err = svc.GetByPhone(db, adminPrincipal(), "+99871999999")
	assert.ErrorIs(t, err, appErrors.ErrOrganizationNotFound)

	// Чужой регистратор получает 403, а не данные
	_, err = svc.GetByPhone(db, registratorPrincipal(77), "+99871000010")
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestOrganizationService_NestedListings(t *testing.T) {
	db := newTestDB(t)
	svc := newOrganizationService()

	org := createTestOrg(t, db, svc, "+99871000011")
	branch, err := svc.CreateBranch(db, adminPrincipal(), org.ID, dto.CreateBranchRequest{Name: "Main", Location: "Center"})
	require.NoError(t, err)
	device, err := svc.CreateDevice(db, adminPrincipal(), org.ID, dto.CreateDeviceRequest{BranchID: branch.ID, Name: "Kassa", OS: "android"})
	require.NoError(t, err)
	addOn, err := svc.CreateAddOn(db, adminPrincipal(), org.ID, dto.CreateAddOnRequest{Type: "waiter", Quantity: 3, MonthlyPrice: 50000})
	require.NoError(t, err)

	branches, err := svc.ListBranches(db, adminPrincipal(), org.ID)
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.Equal(t, branch.ID, branches[0].ID)

	devices, err := svc.ListDevices(db, adminPrincipal(), org.ID)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, device.ID, devices[0].ID)

	addOns, err := svc.ListAddOns(db, adminPrincipal(), org.ID)
	require.NoError(t, err)
	require.Len(t, addOns, 1)
	assert.Equal(t, addOn.ID, addOns[0].ID)

	// Созданное дополнение видно и в карточке организации
	full, err := svc.Get(db, adminPrincipal(), org.ID)
	require.NoError(t, err)
	require.Len(t, full.AddOns, 1)
	assert.Equal(t, addOn.ID, full.AddOns[0].ID)

	// Чужой регистратор не видит вложенные ресурсы
	_, err = svc.ListBranches(db, registratorPrincipal(77), org.ID)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
	_, err = svc.ListDevices(db, registratorPrincipal(77), org.ID)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
	_, err = svc.ListAddOns(db, registratorPrincipal(77), org.ID)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	_, err = svc.ListBranches(db, adminPrincipal(), 9999)
	assert.ErrorIs(t, err, appErrors.ErrOrganizationNotFound)
}

func TestOrganizationService_AddOnDefaultQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newOrganizationService()

	org := createTestOrg(t, db, svc, "+99871000012")

	// Количество не передано - подразумевается одна единица
	addOn, err := svc.CreateAddOn(db, adminPrincipal(), org.ID, dto.CreateAddOnRequest{Type: "branch", MonthlyPrice: 20000})
	require.NoError(t, err)
	assert.Equal(t, 1, addOn.Quantity)
}
