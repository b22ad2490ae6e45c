package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel_backend/test/helpers"
)

func createOrganization(t *testing.T, ts *helpers.TestServer, token, phone string) uint {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/organizations", token, map[string]interface{}{
		"name":     "Cafe " + phone,
		"phone":    phone,
		"boss":     "Boss Person",
		"password": "orgpass123",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "body: %s", body)

	var created struct {
		ID uint `json:"id"`
	}
	helpers.DecodeJSON(t, body, &created)
	return created.ID
}

// TestOrganizationLifecycle - создание, филиал, устройство, чтение с вложениями
func TestOrganizationLifecycle(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := ts.LoginAsAdmin(t)

	orgID := createOrganization(t, ts, token, "+998711000001")

	res, body := ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/organizations/%d/branches", orgID), token,
		map[string]string{"name": "Main", "location": "Center"})
	require.Equal(t, http.StatusCreated, res.StatusCode, "body: %s", body)

	var branch struct {
		ID uint `json:"id"`
	}
	helpers.DecodeJSON(t, body, &branch)

	res, body = ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/organizations/%d/devices", orgID), token,
		map[string]interface{}{"branch_id": branch.ID, "name": "Kassa-1", "os": "android"})
	require.Equal(t, http.StatusCreated, res.StatusCode, "body: %s", body)

	// Организация отдается с филиалами и устройствами
	res, body = ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/organizations/%d", orgID), token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var org struct {
		Plan     string `json:"plan"`
		Branches []struct {
			Name    string `json:"name"`
			Devices []struct {
				Name string `json:"name"`
			} `json:"devices"`
		} `json:"branches"`
	}
	helpers.DecodeJSON(t, body, &org)
	assert.Equal(t, "Free", org.Plan)
	require.Len(t, org.Branches, 1)
	require.Len(t, org.Branches[0].Devices, 1)
	assert.Equal(t, "Kassa-1", org.Branches[0].Devices[0].Name)

	// Удаление вместе с вложенными сущностями
	res, _ = ts.SendRequest(t, http.MethodDelete,
		fmt.Sprintf("/api/organizations/%d", orgID), token, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/organizations/%d", orgID), token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestOrganizationDuplicatePhone(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := ts.LoginAsAdmin(t)

	createOrganization(t, ts, token, "+998711000002")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/organizations", token, map[string]interface{}{
		"name":     "Clone",
		"phone":    "+998711000002",
		"boss":     "Other",
		"password": "orgpass123",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "PHONE_ALREADY_EXISTS")
}

// TestOrganizationSelfAccess - вход организации и доступ только к себе
func TestOrganizationSelfAccess(t *testing.T) {
	ts := helpers.NewTestServer(t)
	adminToken := ts.LoginAsAdmin(t)

	orgID := createOrganization(t, ts, adminToken, "+998711000003")
	otherID := createOrganization(t, ts, adminToken, "+998711000004")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/organizations/login", "", map[string]string{
		"phone":    "+998711000003",
		"password": "orgpass123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "body: %s", body)

	var tokens struct {
		AccessToken string `json:"access_token"`
		Role        string `json:"role"`
	}
	helpers.DecodeJSON(t, body, &tokens)
	assert.Equal(t, "organization", tokens.Role)

	// Своя организация доступна, хеш пароля скрыт
	res, body = ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/organizations/%d", orgID), tokens.AccessToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, body, "password_hash")

	// Чужая - запрещена
	res, _ = ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/organizations/%d", otherID), tokens.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestRegistratorScope - регистратор видит только свои организации
func TestRegistratorScope(t *testing.T) {
	ts := helpers.NewTestServer(t)
	adminToken := ts.LoginAsAdmin(t)

	regID := ts.CreateStaff(t, adminToken, "+998901000001", "regpass123", "registrator")
	regToken := ts.Login(t, "+998901000001", "regpass123")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/organizations", adminToken, map[string]interface{}{
		"name":          "Owned",
		"phone":         "+998711000005",
		"boss":          "Boss",
		"password":      "orgpass123",
		"registrator_id": regID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "body: %s", body)
	createOrganization(t, ts, adminToken, "+998711000006")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/organizations", regToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var list []struct {
		Name string `json:"name"`
	}
	helpers.DecodeJSON(t, body, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Owned", list[0].Name)

	// Удаление доступно только админу, даже для своей организации
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/organizations/1", regToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestAddOnVisibleAfterCreate - дополнение читается и списком, и в карточке организации
func TestAddOnVisibleAfterCreate(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := ts.LoginAsAdmin(t)

	orgID := createOrganization(t, ts, token, "+998711000007")

	res, body := ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/organizations/%d/add-ons", orgID), token,
		map[string]interface{}{"type": "device", "quantity": 2, "monthly_price": 30000})
	require.Equal(t, http.StatusCreated, res.StatusCode, "body: %s", body)

	var created struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
	}
	helpers.DecodeJSON(t, body, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 2, created.Quantity)

	res, body = ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/organizations/%d/add-ons", orgID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "body: %s", body)

	var list []struct {
		ID   string `json:"id"`
		Type string `json:"type"`
	}
	helpers.DecodeJSON(t, body, &list)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "device", list[0].Type)

	res, body = ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/organizations/%d", orgID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var org struct {
		AddOns []struct {
			ID string `json:"id"`
		} `json:"add_ons"`
	}
	helpers.DecodeJSON(t, body, &org)
	require.Len(t, org.AddOns, 1)
	assert.Equal(t, created.ID, org.AddOns[0].ID)

	// Без количества подразумевается одна единица
	res, body = ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/organizations/%d/add-ons", orgID), token,
		map[string]interface{}{"type": "waiter", "monthly_price": 15000})
	require.Equal(t, http.StatusCreated, res.StatusCode, "body: %s", body)
	helpers.DecodeJSON(t, body, &created)
	assert.Equal(t, 1, created.Quantity)
}

// TestNestedListings - вложенные GET по филиалам и устройствам
func TestNestedListings(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := ts.LoginAsAdmin(t)

	orgID := createOrganization(t, ts, token, "+998711000008")

	res, body := ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/organizations/%d/branches", orgID), token,
		map[string]string{"name": "Main", "location": "Center"})
	require.Equal(t, http.StatusCreated, res.StatusCode, "body: %s", body)

	var branch struct {
		ID uint `json:"id"`
	}
	helpers.DecodeJSON(t, body, &branch)

	res, body = ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/organizations/%d/devices", orgID), token,
		map[string]interface{}{"branch_id": branch.ID, "name": "Kassa-1", "os": "ios"})
	require.Equal(t, http.StatusCreated, res.StatusCode, "body: %s", body)

	res, body = ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/organizations/%d/branches", orgID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var branches []struct {
		Name string `json:"name"`
	}
	helpers.DecodeJSON(t, body, &branches)
	require.Len(t, branches, 1)
	assert.Equal(t, "Main", branches[0].Name)

	res, body = ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/organizations/%d/devices", orgID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var devices []struct {
		Name     string `json:"name"`
		BranchID uint   `json:"branch_id"`
	}
	helpers.DecodeJSON(t, body, &devices)
	require.Len(t, devices, 1)
	assert.Equal(t, "Kassa-1", devices[0].Name)
	assert.Equal(t, branch.ID, devices[0].BranchID)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/organizations/9999/branches", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
