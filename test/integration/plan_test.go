package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel_backend/test/helpers"
)

// TestPlansPublicRead - тарифы читаются без токена (витрина для лендинга)
func TestPlansPublicRead(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/plans", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var plans []struct {
		Name         string  `json:"name"`
		MonthlyPrice float64 `json:"monthly_price"`
		Flag         string  `json:"flag"`
	}
	helpers.DecodeJSON(t, body, &plans)
	require.Len(t, plans, 3)

	names := map[string]float64{}
	for _, p := range plans {
		names[p.Name] = p.MonthlyPrice
	}
	assert.Equal(t, float64(0), names["Free"])
	assert.Equal(t, float64(150000), names["Basic"])
	assert.Equal(t, float64(400000), names["Premium"])
}

func TestPlanWriteRequiresAdmin(t *testing.T) {
	ts := helpers.NewTestServer(t)

	newPlan := map[string]interface{}{
		"name":              "Enterprise",
		"branches":          500,
		"devices_per_branch": 500,
		"monthly_price":     900000,
		"yearly_price":      9000000,
	}

	// Без токена - 401
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/plans", "", newPlan)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	adminToken := ts.LoginAsAdmin(t)
	ts.CreateStaff(t, adminToken, "+998906000001", "modpass123", "moderator")
	modToken := ts.Login(t, "+998906000001", "modpass123")

	// Модератору тарифы менять нельзя
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/plans", modToken, newPlan)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/plans", adminToken, newPlan)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "body: %s", body)

	// Дубликат имени - конфликт
	res, body = ts.SendRequest(t, http.MethodPost, "/api/plans", adminToken, newPlan)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "PLAN_ALREADY_EXISTS")
}
