package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel_backend/test/helpers"
)

// TestPaymentsAndSverka - платежи и акт сверки за период
func TestPaymentsAndSverka(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := ts.LoginAsAdmin(t)

	orgID := createOrganization(t, ts, token, "+998712000001")

	for _, p := range []map[string]interface{}{
		{"organization_id": orgID, "amount": 100000, "source": "Click", "payment_date": "2025-03-01"},
		{"organization_id": orgID, "amount": 250000, "source": "Payme", "payment_date": "2025-03-15"},
		{"organization_id": orgID, "amount": 999999, "source": "Subscription", "payment_date": "2025-04-02"},
	} {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/payments", token, p)
		require.Equal(t, http.StatusCreated, res.StatusCode, "body: %s", body)
	}

	// Неизвестный источник отклоняется
	res, body := ts.SendRequest(t, http.MethodPost, "/api/payments", token, map[string]interface{}{
		"organization_id": orgID, "amount": 100, "source": "Cash", "payment_date": "2025-03-01",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	assert.Contains(t, body, "INVALID_SOURCE")

	res, body = ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/payments/sverka/%d?start_date=2025-03-01&end_date=2025-03-31", orgID),
		token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "body: %s", body)

	var report struct {
		OrganizationID uint    `json:"organization_id"`
		TotalAmount    float64 `json:"total_amount"`
		PaymentCount   int     `json:"payment_count"`
	}
	helpers.DecodeJSON(t, body, &report)
	assert.Equal(t, orgID, report.OrganizationID)
	assert.Equal(t, float64(350000), report.TotalAmount)
	assert.Equal(t, 2, report.PaymentCount)

	// Сверка по несуществующей организации
	res, _ = ts.SendRequest(t, http.MethodGet,
		"/api/payments/sverka/9999?start_date=2025-03-01&end_date=2025-03-31", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

// TestPayoutsAndBalances - выплата регистратору и пересчет баланса
func TestPayoutsAndBalances(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := ts.LoginAsAdmin(t)

	userID := ts.CreateStaff(t, token, "+998906000002", "regpass123", "registrator")
	orgID := createOrganization(t, ts, token, "+998712000002")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/payments", token, map[string]interface{}{
		"organization_id": orgID, "amount": 1000000, "source": "Click", "payment_date": "2025-05-01",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "body: %s", body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/user-payouts", token, map[string]interface{}{
		"user_id": userID, "amount": 30000, "source": "Naqd pul", "payout_date": "2025-05-10",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "body: %s", body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/users/balances", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var balances []struct {
		UserID        uint    `json:"user_id"`
		TotalEarnings float64 `json:"total_earnings"`
		TotalPayouts  float64 `json:"total_payouts"`
		Balance       float64 `json:"balance"`
	}
	helpers.DecodeJSON(t, body, &balances)

	var found bool
	for _, b := range balances {
		if b.UserID == userID {
			found = true
			assert.Equal(t, float64(1000000), b.TotalEarnings)
			assert.Equal(t, float64(30000), b.TotalPayouts)
			// 10% доля: 100000 - 30000
			assert.Equal(t, float64(70000), b.Balance)
		}
	}
	assert.True(t, found, "в выдаче нет баланса созданного регистратора")
}
