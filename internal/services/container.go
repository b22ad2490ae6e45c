package services

import (
	"adminpanel_backend/internal/auth"
	"adminpanel_backend/internal/repositories"
)

// ServiceContainer собирает все сервисы приложения
type ServiceContainer struct {
	Auth         *AuthService
	User         *UserService
	Organization *OrganizationService
	Plan         *PlanService
	Payment      *PaymentService
	Payout       *PayoutService
	Registration *RegistrationService
}

func NewServiceContainer(tokenManager *auth.TokenManager) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	orgRepo := repositories.NewOrganizationRepository()
	branchRepo := repositories.NewBranchRepository()
	deviceRepo := repositories.NewDeviceRepository()
	addOnRepo := repositories.NewAddOnRepository()
	planRepo := repositories.NewPlanRepository()
	paymentRepo := repositories.NewPaymentRepository()
	payoutRepo := repositories.NewPayoutRepository()
	registrationRepo := repositories.NewRegistrationRepository()

	return &ServiceContainer{
		Auth:         NewAuthService(userRepo, orgRepo, tokenManager),
		User:         NewUserService(userRepo, paymentRepo, payoutRepo),
		Organization: NewOrganizationService(orgRepo, branchRepo, deviceRepo, addOnRepo),
		Plan:         NewPlanService(planRepo),
		Payment:      NewPaymentService(paymentRepo, orgRepo),
		Payout:       NewPayoutService(payoutRepo, userRepo),
		Registration: NewRegistrationService(registrationRepo, userRepo),
	}
}
