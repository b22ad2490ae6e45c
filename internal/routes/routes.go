package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "adminpanel_backend/docs"
	"adminpanel_backend/internal/handlers"
	"adminpanel_backend/internal/logger"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// public - без аутентификации, protected - за JWT middleware;
// дальнейшие решения о доступе принимает политика в сервисах.
func RegisterRoutes(
	router *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authMiddleware gin.HandlerFunc,
) {
	appHandlers.HealthHandler.RegisterRoutes(router)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	public := api
	protected := api.Group("")
	protected.Use(authMiddleware)

	appHandlers.AuthHandler.RegisterRoutes(public)
	appHandlers.OrganizationHandler.RegisterRoutes(public, protected)
	appHandlers.PlanHandler.RegisterRoutes(public, protected)
	appHandlers.UserHandler.RegisterRoutes(protected)
	appHandlers.PaymentHandler.RegisterRoutes(protected)
	appHandlers.PayoutHandler.RegisterRoutes(protected)
	appHandlers.RegistrationHandler.RegisterRoutes(protected)

	logger.Info("HTTP routes registered")
}
