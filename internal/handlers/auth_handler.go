package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminpanel_backend/internal/services"
	"adminpanel_backend/internal/services/dto"
)

// AuthHandler - вход сотрудников, публичная заявка на регистрацию, refresh
type AuthHandler struct {
	*BaseHandler
	authService         *services.AuthService
	registrationService *services.RegistrationService
}

func NewAuthHandler(
	base *BaseHandler,
	authService *services.AuthService,
	registrationService *services.RegistrationService,
) *AuthHandler {
	return &AuthHandler{
		BaseHandler:         base,
		authService:         authService,
		registrationService: registrationService,
	}
}

// RegisterRoutes регистрирует публичные маршруты аутентификации
func (h *AuthHandler) RegisterRoutes(public *gin.RouterGroup) {
	auth := public.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register-request", h.RegisterRequest)
		auth.POST("/refresh", h.Refresh)
	}
}

// Login - вход сотрудника по телефону и паролю
// @Summary Вход сотрудника
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Телефон и пароль"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} appErrors.ErrorResponse "Неверные учетные данные"
// @Failure 429 {object} appErrors.ErrorResponse "Слишком много попыток"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	tokens, err := h.authService.StaffLogin(db, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// RegisterRequest - публичная заявка на регистрацию регистратора
// @Summary Заявка на регистрацию
// @Description Создает заявку в статусе pending, решение принимает админ
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegistrationSubmitRequest true "Данные заявки"
// @Success 201 {object} models.RegistrationRequest
// @Failure 409 {object} appErrors.ErrorResponse "Телефон уже занят"
// @Failure 422 {object} appErrors.ErrorResponse "Ошибка валидации"
// @Router /auth/register-request [post]
func (h *AuthHandler) RegisterRequest(c *gin.Context) {
	var req dto.RegistrationSubmitRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	request, err := h.registrationService.Submit(db, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// Refresh выдает новую пару токенов по refresh-токену
// @Summary Обновление токенов
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh-токен"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} appErrors.ErrorResponse "Недействительный токен"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	tokens, err := h.authService.Refresh(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}
