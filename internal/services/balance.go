package services

import (
	"adminpanel_backend/internal/models"
	"adminpanel_backend/internal/services/dto"
)

// ComputeBalances считает балансы сотрудников.
// total_earnings - общесистемная сумма всех платежей, она одинакова
// для каждого сотрудника (исторически так считается доля, см. DESIGN.md).
// balance = earnings * share/100 - сумма выплат; может быть отрицательным.
func ComputeBalances(users []models.User, totalEarnings float64, payoutSums map[uint]float64) []dto.UserBalance {
	balances := make([]dto.UserBalance, 0, len(users))

	for _, user := range users {
		paidOut := payoutSums[user.ID]
		earned := totalEarnings * user.SharePercentage / 100

		balances = append(balances, dto.UserBalance{
			UserID:          user.ID,
			FullName:        user.FullName,
			Role:            string(user.Role),
			SharePercentage: user.SharePercentage,
			TotalEarnings:   totalEarnings,
			TotalPayouts:    paidOut,
			Balance:         earned - paidOut,
		})
	}

	return balances
}
