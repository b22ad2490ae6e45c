package repositories

import (
	"gorm.io/gorm"

	"adminpanel_backend/internal/models"
)

// PaymentFilter - параметры выборки платежей
type PaymentFilter struct {
	OrganizationID uint
	Source         models.PaymentSource
	From           *models.Date
	To             *models.Date
	Limit          int
	Offset         int
}

type PaymentRepository interface {
	Create(db *gorm.DB, payment *models.Payment) error
	List(db *gorm.DB, filter PaymentFilter) ([]models.Payment, error)
	ListForOrgBetween(db *gorm.DB, orgID uint, from, to models.Date) ([]models.Payment, error)
	SumAll(db *gorm.DB) (float64, error)
	SumForOrgBetween(db *gorm.DB, orgID uint, from, to models.Date) (float64, error)
}

type paymentRepository struct{}

func NewPaymentRepository() PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *models.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) List(db *gorm.DB, filter PaymentFilter) ([]models.Payment, error) {
	query := db.Model(&models.Payment{})

	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}
	if filter.Source != "" {
		query = query.Where("source = ?", filter.Source)
	}
	if filter.From != nil {
		query = query.Where("payment_date >= ?", filter.From.Time)
	}
	if filter.To != nil {
		query = query.Where("payment_date <= ?", filter.To.Time)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var payments []models.Payment
	if err := query.Order("payment_date DESC, id DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) ListForOrgBetween(db *gorm.DB, orgID uint, from, to models.Date) ([]models.Payment, error) {
	var payments []models.Payment
	err := db.Where("organization_id = ? AND payment_date >= ? AND payment_date <= ?",
		orgID, from.Time, to.Time).
		Order("payment_date").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// SumAll - сумма всех платежей в системе (основа расчета балансов)
func (r *paymentRepository) SumAll(db *gorm.DB) (float64, error) {
	var total float64
	err := db.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *paymentRepository) SumForOrgBetween(db *gorm.DB, orgID uint, from, to models.Date) (float64, error) {
	var total float64
	err := db.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("organization_id = ? AND payment_date >= ? AND payment_date <= ?",
			orgID, from.Time, to.Time).
		Scan(&total).Error
	return total, err
}
