package auth

import "adminpanel_backend/internal/appErrors"

// Роли субъектов. Первые три - сотрудники (users),
// "organization" - организация, вошедшая по своим учетным данным.
const (
	RoleAdmin        = "admin"
	RoleModerator    = "moderator"
	RoleRegistrator  = "registrator"
	RoleOrganization = "organization"
)

// Principal - аутентифицированный субъект запроса
type Principal struct {
	SubjectID uint
	Role      string
}

// Operation - именованная операция API, подлежащая авторизации
type Operation string

const (
	OpOrganizationList   Operation = "organization.list"
	OpOrganizationRead   Operation = "organization.read"
	OpOrganizationCreate Operation = "organization.create"
	OpOrganizationUpdate Operation = "organization.update" // включая вложенные branches/devices/add-ons
	OpOrganizationDelete Operation = "organization.delete"

	OpPlanRead  Operation = "plan.read"
	OpPlanWrite Operation = "plan.write"

	OpPaymentList   Operation = "payment.list"
	OpPaymentCreate Operation = "payment.create"
	OpPaymentSverka Operation = "payment.sverka"

	OpUserList     Operation = "user.list"
	OpUserRead     Operation = "user.read"
	OpUserBalances Operation = "user.balances"
	OpUserWrite    Operation = "user.write"

	OpPayoutList  Operation = "payout.list"
	OpPayoutWrite Operation = "payout.write"

	OpRegistrationList   Operation = "registration.list"
	OpRegistrationDecide Operation = "registration.decide"
)

// Target - объект операции. Для операций без объекта остается нулевым.
type Target struct {
	OrganizationID uint  // ID организации, которой касается операция
	RegistratorID  *uint // registrator_id этой организации (если загружен)
}

// ownershipCheck дополнительно ограничивает роль конкретным объектом.
// nil означает, что роли достаточно самой по себе.
type ownershipCheck func(p *Principal, t Target) bool

func registratorOwns(p *Principal, t Target) bool {
	return t.RegistratorID != nil && *t.RegistratorID == p.SubjectID
}

func organizationSelf(p *Principal, t Target) bool {
	return t.OrganizationID == p.SubjectID
}

type rule struct {
	public bool
	roles  map[string]ownershipCheck
}

// Единая таблица доступа. Middleware только аутентифицирует,
// все решения о доступе принимаются здесь.
var policy = map[Operation]rule{
	OpOrganizationList: {roles: map[string]ownershipCheck{
		RoleAdmin:        nil,
		RoleModerator:    nil,
		RoleRegistrator:  nil, // выдача фильтруется по registrator_id в сервисе
		RoleOrganization: nil, // выдача фильтруется до самой организации
	}},
	OpOrganizationRead: {roles: map[string]ownershipCheck{
		RoleAdmin:        nil,
		RoleModerator:    nil,
		RoleRegistrator:  registratorOwns,
		RoleOrganization: organizationSelf,
	}},
	OpOrganizationCreate: {roles: map[string]ownershipCheck{
		RoleAdmin:     nil,
		RoleModerator: nil,
	}},
	OpOrganizationUpdate: {roles: map[string]ownershipCheck{
		RoleAdmin:        nil,
		RoleModerator:    nil,
		RoleOrganization: organizationSelf,
	}},
	OpOrganizationDelete: {roles: map[string]ownershipCheck{
		RoleAdmin: nil,
	}},

	OpPlanRead: {public: true},
	OpPlanWrite: {roles: map[string]ownershipCheck{
		RoleAdmin: nil,
	}},

	OpPaymentList: {roles: map[string]ownershipCheck{
		RoleAdmin:     nil,
		RoleModerator: nil,
	}},
	OpPaymentCreate: {roles: map[string]ownershipCheck{
		RoleAdmin:     nil,
		RoleModerator: nil,
	}},
	OpPaymentSverka: {roles: map[string]ownershipCheck{
		RoleAdmin:     nil,
		RoleModerator: nil,
	}},

	OpUserList: {roles: map[string]ownershipCheck{
		RoleAdmin:     nil,
		RoleModerator: nil,
	}},
	OpUserRead: {roles: map[string]ownershipCheck{
		RoleAdmin:     nil,
		RoleModerator: nil,
	}},
	OpUserBalances: {roles: map[string]ownershipCheck{
		RoleAdmin:     nil,
		RoleModerator: nil,
	}},
	OpUserWrite: {roles: map[string]ownershipCheck{
		RoleAdmin: nil,
	}},

	OpPayoutList: {roles: map[string]ownershipCheck{
		RoleAdmin:     nil,
		RoleModerator: nil,
	}},
	OpPayoutWrite: {roles: map[string]ownershipCheck{
		RoleAdmin: nil,
	}},

	OpRegistrationList: {roles: map[string]ownershipCheck{
		RoleAdmin:     nil,
		RoleModerator: nil,
	}},
	OpRegistrationDecide: {roles: map[string]ownershipCheck{
		RoleAdmin: nil,
	}},
}

// Authorize решает, может ли субъект выполнить операцию над объектом.
// Возвращает nil, ErrUnauthorized (нет субъекта) или ErrForbidden.
func Authorize(p *Principal, op Operation, t Target) error {
	r, ok := policy[op]
	if !ok {
		return appErrors.ErrForbidden
	}

	if r.public {
		return nil
	}

	if p == nil {
		return appErrors.ErrUnauthorized
	}

	check, allowed := r.roles[p.Role]
	if !allowed {
		return appErrors.ErrForbidden
	}

	if check != nil && !check(p, t) {
		return appErrors.ErrForbidden
	}

	return nil
}

// CanListAll сообщает, видит ли роль полный список организаций
// (иначе сервис сужает выдачу до своих)
func CanListAll(role string) bool {
	return role == RoleAdmin || role == RoleModerator
}
