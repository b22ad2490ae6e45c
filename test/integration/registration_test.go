package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel_backend/test/helpers"
)

// TestRegistrationApproveFlow - полный путь заявки:
// подача без токена, одобрение админом, вход новым регистратором
func TestRegistrationApproveFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/register-request", "", map[string]string{
		"full_name": "Future Registrator",
		"phone":     "+998905000001",
		"password":  "newpass123",
		"address":   "Tashkent",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "body: %s", body)

	var request struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	helpers.DecodeJSON(t, body, &request)
	assert.Equal(t, "pending", request.Status)

	adminToken := ts.LoginAsAdmin(t)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/registration-requests?status=pending", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Future Registrator")

	res, body = ts.SendRequest(t, http.MethodPost, "/api/registration-requests/approve", adminToken, map[string]interface{}{
		"id":               request.ID,
		"share_percentage": 12.5,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "body: %s", body)
	assert.Contains(t, body, `"role":"registrator"`)

	// Пароль из заявки теперь действует
	token := ts.Login(t, "+998905000001", "newpass123")
	assert.NotEmpty(t, token)

	// Повторное одобрение той же заявки невозможно
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/registration-requests/approve", adminToken, map[string]interface{}{
		"id":               request.ID,
		"share_percentage": 12.5,
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestRegistrationReject(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/register-request", "", map[string]string{
		"full_name": "Denied",
		"phone":     "+998905000002",
		"password":  "newpass123",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var request struct {
		ID uint `json:"id"`
	}
	helpers.DecodeJSON(t, body, &request)

	adminToken := ts.LoginAsAdmin(t)
	res, body = ts.SendRequest(t, http.MethodPost, "/api/registration-requests/reject", adminToken, map[string]interface{}{
		"id": request.ID,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"status":"rejected"`)

	// Логин по отклоненной заявке невозможен
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"phone":    "+998905000002",
		"password": "newpass123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

// TestRegistrationDecideForbiddenForModerator - модератор видит заявки, но не решает
func TestRegistrationDecideForbiddenForModerator(t *testing.T) {
	ts := helpers.NewTestServer(t)
	adminToken := ts.LoginAsAdmin(t)
	ts.CreateStaff(t, adminToken, "+998905000003", "modpass123", "moderator")
	modToken := ts.Login(t, "+998905000003", "modpass123")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/register-request", "", map[string]string{
		"full_name": "Pending One",
		"phone":     "+998905000004",
		"password":  "newpass123",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var request struct {
		ID uint `json:"id"`
	}
	helpers.DecodeJSON(t, body, &request)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/registration-requests", modToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/registration-requests/approve", modToken, map[string]interface{}{
		"id":               request.ID,
		"share_percentage": 10,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "FORBIDDEN")
}
