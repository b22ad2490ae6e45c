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

func newPaymentService() *PaymentService {
	return NewPaymentService(
		repositories.NewPaymentRepository(),
		repositories.NewOrganizationRepository(),
	)
}

func seedOrg(t *testing.T, db *gorm.DB, phone string) *models.Organization {
	t.Helper()
	org := &models.Organization{
		Name:             "Org " + phone,
		Phone:            phone,
		Boss:             "Boss",
		Plan:             "Free",
		RegistrationDate: models.Today(),
		IsActive:         true,
	}
	require.NoError(t, db.Create(org).Error)
	return org
}

func TestPaymentService_CreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService()
	org := seedOrg(t, db, "+99871200001")

	// Неизвестный источник
	_, err := svc.Create(db, adminPrincipal(), dto.CreatePaymentRequest{
		OrganizationID: org.ID, Amount: 1000, Source: "Cash", PaymentDate: "2025-02-01",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidSource)

	// Кривая дата
	_, err = svc.Create(db, adminPrincipal(), dto.CreatePaymentRequest{
		OrganizationID: org.ID, Amount: 1000, Source: "Click", PaymentDate: "01.02.2025",
	})
	require.Error(t, err)

	// Несуществующая организация
	_, err = svc.Create(db, adminPrincipal(), dto.CreatePaymentRequest{
		OrganizationID: 9999, Amount: 1000, Source: "Click", PaymentDate: "2025-02-01",
	})
	assert.ErrorIs(t, err, appErrors.ErrOrganizationNotFound)

	payment, err := svc.Create(db, adminPrincipal(), dto.CreatePaymentRequest{
		OrganizationID: org.ID, Amount: 1000, Source: "Payme", PaymentDate: "2025-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentSourcePayme, payment.Source)
	assert.Equal(t, "2025-02-01", payment.PaymentDate.String())
}

func TestPaymentService_ListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService()
	first := seedOrg(t, db, "+99871200002")
	second := seedOrg(t, db, "+99871200003")

	seed := []struct {
		org    uint
		amount float64
		source string
		date   string
	}{
		{first.ID, 100, "Click", "2025-01-10"},
		{first.ID, 200, "Payme", "2025-01-20"},
		{second.ID, 300, "Click", "2025-02-05"},
		{first.ID, 400, "Subscription", "2025-02-10"},
	}
	for _, p := range seed {
		_, err := svc.Create(db, adminPrincipal(), dto.CreatePaymentRequest{
			OrganizationID: p.org, Amount: p.amount, Source: p.source, PaymentDate: p.date,
		})
		require.NoError(t, err)
	}

	all, err := svc.List(db, moderatorPrincipal(), dto.PaymentListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	byOrg, err := svc.List(db, moderatorPrincipal(), dto.PaymentListQuery{OrganizationID: second.ID})
	require.NoError(t, err)
	assert.Len(t, byOrg, 1)

	bySource, err := svc.List(db, moderatorPrincipal(), dto.PaymentListQuery{Source: "Click"})
	require.NoError(t, err)
	assert.Len(t, bySource, 2)

	byRange, err := svc.List(db, moderatorPrincipal(), dto.PaymentListQuery{
		StartDate: "2025-01-15", EndDate: "2025-02-06",
	})
	require.NoError(t, err)
	assert.Len(t, byRange, 2)

	// Регистратору платежи недоступны
	_, err = svc.List(db, registratorPrincipal(3), dto.PaymentListQuery{})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestPaymentService_Sverka(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService()
	org := seedOrg(t, db, "+99871200004")
	other := seedOrg(t, db, "+99871200005")

	for _, p := range []struct {
		org    uint
		amount float64
		date   string
	}{
		{org.ID, 100, "2025-03-01"},
		{org.ID, 250, "2025-03-15"},
		{org.ID, 999, "2025-04-01"}, // вне периода
		{other.ID, 500, "2025-03-10"},
	} {
		_, err := svc.Create(db, adminPrincipal(), dto.CreatePaymentRequest{
			OrganizationID: p.org, Amount: p.amount, Source: "Click", PaymentDate: p.date,
		})
		require.NoError(t, err)
	}

	report, err := svc.Sverka(db, moderatorPrincipal(), org.ID, "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	assert.Equal(t, float64(350), report.TotalAmount)
	assert.Equal(t, 2, report.PaymentCount)
	assert.Len(t, report.Payments, 2)

	// Период задом наперед
	_, err = svc.Sverka(db, moderatorPrincipal(), org.ID, "2025-03-31", "2025-03-01")
	require.Error(t, err)

	_, err = svc.Sverka(db, moderatorPrincipal(), 9999, "2025-03-01", "2025-03-31")
	assert.ErrorIs(t, err, appErrors.ErrOrganizationNotFound)
}

func TestUserService_Balances(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(
		repositories.NewUserRepository(),
		repositories.NewPaymentRepository(),
		repositories.NewPayoutRepository(),
	)
	paySvc := newPaymentService()
	org := seedOrg(t, db, "+99871200006")

	user := &models.User{
		FullName: "Sharer", Phone: "+998901200006", PasswordHash: "x",
		Role: models.UserRoleRegistrator, SharePercentage: 20, IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)

	for _, amount := range []float64{1000, 500} {
		_, err := paySvc.Create(db, adminPrincipal(), dto.CreatePaymentRequest{
			OrganizationID: org.ID, Amount: amount, Source: "Click", PaymentDate: "2025-05-01",
		})
		require.NoError(t, err)
	}
	require.NoError(t, db.Create(&models.UserPayout{
		UserID: user.ID, Amount: 400, Source: models.PayoutSourceCash,
		PayoutDate: mustDate(t, "2025-05-10"),
	}).Error)

	balances, err := userSvc.Balances(db, moderatorPrincipal())
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, float64(1500), balances[0].TotalEarnings)
	assert.Equal(t, float64(400), balances[0].TotalPayouts)
	// 1500 * 20% - 400 = -100: отрицательный баланс допустим
	assert.Equal(t, float64(-100), balances[0].Balance)
}
