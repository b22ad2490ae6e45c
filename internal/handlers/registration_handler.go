package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminpanel_backend/internal/middleware"
	"adminpanel_backend/internal/services"
	"adminpanel_backend/internal/services/dto"
)

// RegistrationHandler - рассмотрение заявок на регистрацию.
// Подача заявки живет в AuthHandler (публичный маршрут).
type RegistrationHandler struct {
	*BaseHandler
	registrationService *services.RegistrationService
}

func NewRegistrationHandler(base *BaseHandler, registrationService *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		BaseHandler:         base,
		registrationService: registrationService,
	}
}

func (h *RegistrationHandler) RegisterRoutes(protected *gin.RouterGroup) {
	requests := protected.Group("/registration-requests")
	{
		requests.GET("", h.List)
		requests.POST("/approve", h.Approve)
		requests.POST("/reject", h.Reject)
	}
}

// List - заявки на регистрацию
// @Summary Список заявок
// @Tags registration
// @Produce json
// @Param status query string false "pending, approved или rejected"
// @Success 200 {array} models.RegistrationRequest
// @Failure 403 {object} appErrors.ErrorResponse
// @Security BearerAuth
// @Router /registration-requests [get]
func (h *RegistrationHandler) List(c *gin.Context) {
	requests, err := h.registrationService.List(h.GetDB(c), middleware.GetPrincipal(c), c.Query("status"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// Approve создает регистратора из заявки; оба изменения в одной транзакции
// @Summary Одобрение заявки
// @Description Создает сотрудника-регистратора и переводит заявку в approved
// @Tags registration
// @Accept json
// @Produce json
// @Param request body dto.ApproveRegistrationRequest true "ID заявки и доля"
// @Success 201 {object} models.User
// @Failure 404 {object} appErrors.ErrorResponse "Заявка не найдена"
// @Failure 409 {object} appErrors.ErrorResponse "Телефон уже занят"
// @Security BearerAuth
// @Router /registration-requests/approve [post]
func (h *RegistrationHandler) Approve(c *gin.Context) {
	var req dto.ApproveRegistrationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.registrationService.Approve(h.GetDB(c), middleware.GetPrincipal(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Reject - отклонение заявки
// @Summary Отклонение заявки
// @Tags registration
// @Accept json
// @Produce json
// @Param request body dto.RejectRegistrationRequest true "ID заявки"
// @Success 200 {object} models.RegistrationRequest
// @Failure 404 {object} appErrors.ErrorResponse "Заявка не найдена"
// @Security BearerAuth
// @Router /registration-requests/reject [post]
func (h *RegistrationHandler) Reject(c *gin.Context) {
	var req dto.RejectRegistrationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	request, err := h.registrationService.Reject(h.GetDB(c), middleware.GetPrincipal(c), req.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}
