package handlers

import "adminpanel_backend/internal/services"

// AppHandlers собирает все хендлеры приложения
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	OrganizationHandler *OrganizationHandler
	PlanHandler         *PlanHandler
	PaymentHandler      *PaymentHandler
	PayoutHandler       *PayoutHandler
	RegistrationHandler *RegistrationHandler
	HealthHandler       *HealthHandler
}

func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler()

	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, sc.Auth, sc.Registration),
		UserHandler:         NewUserHandler(base, sc.User),
		OrganizationHandler: NewOrganizationHandler(base, sc.Organization, sc.Auth),
		PlanHandler:         NewPlanHandler(base, sc.Plan),
		PaymentHandler:      NewPaymentHandler(base, sc.Payment),
		PayoutHandler:       NewPayoutHandler(base, sc.Payout),
		RegistrationHandler: NewRegistrationHandler(base, sc.Registration),
		HealthHandler:       NewHealthHandler(),
	}
}
