package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"adminpanel_backend/internal/auth"
	"adminpanel_backend/internal/config"
	"adminpanel_backend/internal/handlers"
	"adminpanel_backend/internal/logger"
	"adminpanel_backend/internal/middleware"
	"adminpanel_backend/internal/models"
	"adminpanel_backend/internal/routes"
	"adminpanel_backend/internal/services"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := SeedDefaultData(gormDB, cfg); err != nil {
		// Без первичного админа панель бесполезна - не запускаем сервер
		logger.Fatal("Failed to seed default data", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokenManager := auth.NewTokenManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTTLMinutes,
		cfg.JWT.RefreshTTLMinutes,
	)

	serviceContainer := services.NewServiceContainer(tokenManager)
	appHandlers := handlers.NewAppHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, middleware.AuthMiddleware(tokenManager))

	return ginRouter
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.Origins))
	router.Use(middleware.NewRateLimiter(cfg.RateLimit.PerMinute).Middleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// AutoMigrate приводит схему БД к моделям
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.Branch{},
		&models.Device{},
		&models.AddOn{},
		&models.CustomPlan{},
		&models.Payment{},
		&models.UserPayout{},
		&models.RegistrationRequest{},
	)
}

// SeedDefaultData создает первичного админа и тарифы по умолчанию.
// Выполняется в одной транзакции, повторный запуск ничего не меняет.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	adminPhone := cfg.FirstAdminPhone
	adminPassword := cfg.FirstAdminPassword
	if adminPhone == "" {
		adminPhone = "admin"
	}
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var admin models.User
	result := tx.Where("phone = ?", adminPhone).First(&admin)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", result.Error)
		}

		logger.Warn("No admin user found. Creating first admin...", "phone", adminPhone)

		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		newAdmin := &models.User{
			FullName:        "Admin User",
			Phone:           adminPhone,
			PasswordHash:    hash,
			Role:            models.UserRoleAdmin,
			SharePercentage: 0,
			IsActive:        true,
		}
		if err := tx.Create(newAdmin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		logger.Info("✅ First admin user created", "phone", adminPhone)
	}

	var planCount int64
	if err := tx.Model(&models.CustomPlan{}).Count(&planCount).Error; err != nil {
		return fmt.Errorf("failed to count plans: %w", err)
	}
	if planCount == 0 {
		if err := tx.Create(defaultPlans()).Error; err != nil {
			return fmt.Errorf("failed to seed default plans: %w", err)
		}
		logger.Info("✅ Default plans seeded")
	}

	return tx.Commit().Error
}

func defaultPlans() []models.CustomPlan {
	return []models.CustomPlan{
		{
			Name:             "Free",
			Branches:         1,
			DevicesPerBranch: 2,
			Waiters:          0,
			WarehouseControl: "none",
			TechCard:         "none",
			APIIntegrations:  []string{},
			MonthlyPrice:     0,
			YearlyPrice:      0,
			Flag:             "Hamyonbop",
			Color:            "#6c757d",
			IsActive:         true,
		},
		{
			Name:             "Basic",
			Branches:         5,
			DevicesPerBranch: 10,
			Waiters:          5,
			KDS:              true,
			WarehouseControl: "lite",
			TechCard:         "lite",
			ChatSupport:      true,
			APIIntegrations:  []string{"Uzum tezkor"},
			MonthlyPrice:     150000,
			YearlyPrice:      1500000,
			Flag:             "Ommabop",
			Color:            "#007bff",
			IsActive:         true,
		},
		{
			Name:             "Premium",
			Branches:         100,
			DevicesPerBranch: 100,
			Waiters:          100,
			KDS:              true,
			WarehouseControl: "pro",
			TechCard:         "pro",
			ChatSupport:      true,
			APIIntegrations:  []string{"Uzum tezkor", "Yandex delivery", "Wolt"},
			PhoneSupport247:  true,
			PersonalManager:  true,
			MonthlyPrice:     400000,
			YearlyPrice:      4000000,
			Flag:             "Premium",
			Color:            "#6a1b9a",
			IsActive:         true,
		},
	}
}
