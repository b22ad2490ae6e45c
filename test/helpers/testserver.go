package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"adminpanel_backend/internal/app"
	"adminpanel_backend/internal/config"
	"adminpanel_backend/internal/logger"
)

// TestServer - полный HTTP-стек поверх in-memory sqlite
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Config *config.Config
}

// NewTestServer поднимает сервер с миграциями и сид-данными
// (админ "admin"/"admin123" и тарифы по умолчанию)
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := testConfig()
	logger.Init(cfg.Server.Env)

	// Уникальное имя БД, иначе параллельные тесты делят одну схему
	dsn := fmt.Sprintf("file:api_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Не удалось открыть тестовую БД: %v", err)
	}

	if err := app.AutoMigrate(db); err != nil {
		t.Fatalf("Не удалось выполнить миграции для тестовой БД: %v", err)
	}
	if err := app.SeedDefaultData(db, cfg); err != nil {
		t.Fatalf("Не удалось засеять тестовую БД: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	ts := &TestServer{Server: server, DB: db, Config: cfg}
	t.Cleanup(ts.Close)
	return ts
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.JWT.Secret = "integration-test-secret"
	cfg.JWT.AccessTTLMinutes = 60
	cfg.JWT.RefreshTTLMinutes = 1440
	// Лимит с запасом, чтобы rate limiter не мешал прогонам
	cfg.RateLimit.PerMinute = 10000
	cfg.CORS.Origins = []string{"http://localhost:3000"}
	cfg.FirstAdminPhone = "admin"
	cfg.FirstAdminPassword = "admin123"
	return cfg
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// SendRequest шлет JSON-запрос и возвращает ответ вместе с телом
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	return res, string(resBody)
}

// DecodeJSON разбирает тело ответа в указанную структуру
func DecodeJSON(t *testing.T, body string, out interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), out); err != nil {
		t.Fatalf("Ошибка разбора JSON ответа %q: %v", body, err)
	}
}

// LoginAsAdmin логинится сид-админом и возвращает access-токен
func (ts *TestServer) LoginAsAdmin(t *testing.T) string {
	t.Helper()
	return ts.Login(t, ts.Config.FirstAdminPhone, ts.Config.FirstAdminPassword)
}

// Login выполняет вход сотрудника и возвращает access-токен
func (ts *TestServer) Login(t *testing.T, phone, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"phone":    phone,
		"password": password,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("Вход %s не удался: статус %d, тело %s", phone, res.StatusCode, body)
	}

	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	DecodeJSON(t, body, &tokens)
	if tokens.AccessToken == "" {
		t.Fatalf("Пустой access_token в ответе: %s", body)
	}
	return tokens.AccessToken
}

// CreateStaff создает сотрудника через API от имени админа и возвращает его ID
func (ts *TestServer) CreateStaff(t *testing.T, adminToken, phone, password, role string) uint {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users", adminToken, map[string]interface{}{
		"full_name":        "Staff " + phone,
		"phone":            phone,
		"password":         password,
		"role":             role,
		"share_percentage": 10,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("Создание сотрудника не удалось: статус %d, тело %s", res.StatusCode, body)
	}

	var created struct {
		ID uint `json:"id"`
	}
	DecodeJSON(t, body, &created)
	return created.ID
}
