package repositories

import (
	"gorm.io/gorm"

	"adminpanel_backend/internal/models"
)

// PayoutFilter - параметры выборки выплат
type PayoutFilter struct {
	UserID uint
	From   *models.Date
	To     *models.Date
}

type PayoutRepository interface {
	Create(db *gorm.DB, payout *models.UserPayout) error
	List(db *gorm.DB, filter PayoutFilter) ([]models.UserPayout, error)
	Delete(db *gorm.DB, id uint) error
	SumByUser(db *gorm.DB) (map[uint]float64, error)
}

type payoutRepository struct{}

func NewPayoutRepository() PayoutRepository {
	return &payoutRepository{}
}

func (r *payoutRepository) Create(db *gorm.DB, payout *models.UserPayout) error {
	return db.Create(payout).Error
}

func (r *payoutRepository) List(db *gorm.DB, filter PayoutFilter) ([]models.UserPayout, error) {
	query := db.Model(&models.UserPayout{})

	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.From != nil {
		query = query.Where("payout_date >= ?", filter.From.Time)
	}
	if filter.To != nil {
		query = query.Where("payout_date <= ?", filter.To.Time)
	}

	var payouts []models.UserPayout
	if err := query.Order("payout_date DESC, id DESC").Find(&payouts).Error; err != nil {
		return nil, err
	}
	return payouts, nil
}

func (r *payoutRepository) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.UserPayout{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPayoutNotFound
	}
	return nil
}

// SumByUser возвращает сумму выплат по каждому сотруднику одним запросом
func (r *payoutRepository) SumByUser(db *gorm.DB) (map[uint]float64, error) {
	var rows []struct {
		UserID uint
		Total  float64
	}
	err := db.Model(&models.UserPayout{}).
		Select("user_id, COALESCE(SUM(amount), 0) AS total").
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	sums := make(map[uint]float64, len(rows))
	for _, row := range rows {
		sums[row.UserID] = row.Total
	}
	return sums, nil
}
