package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminpanel_backend/internal/middleware"
	"adminpanel_backend/internal/models"
	"adminpanel_backend/internal/repositories"
	"adminpanel_backend/internal/services"
	"adminpanel_backend/internal/services/dto"
)

// UserHandler - CRUD сотрудников и их балансы
type UserHandler struct {
	*BaseHandler
	userService *services.UserService
}

func NewUserHandler(base *BaseHandler, userService *services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(protected *gin.RouterGroup) {
	users := protected.Group("/users")
	{
		users.GET("", h.List)
		users.POST("", h.Create)
		users.GET("/balances", h.Balances)
		users.GET("/:id", h.Get)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}

// List - список сотрудников
// @Summary Список сотрудников
// @Tags users
// @Produce json
// @Param search query string false "Поиск по имени или телефону"
// @Param role query string false "Фильтр по роли"
// @Success 200 {array} models.User
// @Failure 403 {object} appErrors.ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	filter := repositories.UserFilter{
		Search: c.Query("search"),
		Role:   models.UserRole(c.Query("role")),
	}

	users, err := h.userService.List(h.GetDB(c), middleware.GetPrincipal(c), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get - сотрудник по ID
// @Summary Сотрудник по ID
// @Tags users
// @Produce json
// @Param id path int true "ID сотрудника"
// @Success 200 {object} models.User
// @Failure 404 {object} appErrors.ErrorResponse "Сотрудник не найден"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	user, err := h.userService.Get(h.GetDB(c), middleware.GetPrincipal(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create - новый сотрудник, только админ
// @Summary Создание сотрудника
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Данные сотрудника"
// @Success 201 {object} models.User
// @Failure 409 {object} appErrors.ErrorResponse "Телефон уже занят"
// @Failure 422 {object} appErrors.ErrorResponse "Ошибка валидации"
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.Create(h.GetDB(c), middleware.GetPrincipal(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Update - частичное обновление сотрудника
// @Summary Обновление сотрудника
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "ID сотрудника"
// @Param request body dto.UpdateUserRequest true "Изменяемые поля"
// @Success 200 {object} models.User
// @Failure 404 {object} appErrors.ErrorResponse "Сотрудник не найден"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.Update(h.GetDB(c), middleware.GetPrincipal(c), id, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete - удаление сотрудника вместе с его выплатами
// @Summary Удаление сотрудника
// @Tags users
// @Param id path int true "ID сотрудника"
// @Success 204 "Удален"
// @Failure 404 {object} appErrors.ErrorResponse "Сотрудник не найден"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.userService.Delete(h.GetDB(c), middleware.GetPrincipal(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Balances - расчетные балансы всех сотрудников
// @Summary Балансы сотрудников
// @Description Доля от платежей привязанных организаций минус выплаты
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserBalance
// @Failure 403 {object} appErrors.ErrorResponse
// @Security BearerAuth
// @Router /users/balances [get]
func (h *UserHandler) Balances(c *gin.Context) {
	balances, err := h.userService.Balances(h.GetDB(c), middleware.GetPrincipal(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, balances)
}
