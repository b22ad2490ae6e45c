package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel_backend/test/helpers"
)

// TestAdminLoginFlow - вход сид-админом и доступ к защищенному ресурсу
func TestAdminLoginFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)

	token := ts.LoginAsAdmin(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/users", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Admin User")
}

func TestLoginWrongPassword(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"phone":    "admin",
		"password": "definitely-wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "INVALID_CREDENTIALS")
}

// TestErrorEnvelope - все ошибки приходят в одном конверте {"error": {...}}
func TestErrorEnvelope(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"phone": "admin",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)

	var envelope struct {
		Error struct {
			Code    string      `json:"code"`
			Message string      `json:"message"`
			Details interface{} `json:"details"`
		} `json:"error"`
	}
	helpers.DecodeJSON(t, body, &envelope)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.NotEmpty(t, envelope.Error.Message)
	assert.NotNil(t, envelope.Error.Details)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "UNAUTHORIZED")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/users", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "INVALID_TOKEN")
}

func TestRefreshFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"phone":    "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
		Role         string `json:"role"`
	}
	helpers.DecodeJSON(t, body, &tokens)
	assert.Equal(t, "bearer", tokens.TokenType)
	assert.Equal(t, "admin", tokens.Role)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/auth/refresh", "", map[string]string{
		"refresh_token": tokens.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "access_token")

	// Access-токен вместо refresh - отказ
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/auth/refresh", "", map[string]string{
		"refresh_token": tokens.AccessToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestHealthCheck(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "ok")
}
