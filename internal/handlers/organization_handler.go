package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminpanel_backend/internal/middleware"
	"adminpanel_backend/internal/repositories"
	"adminpanel_backend/internal/services"
	"adminpanel_backend/internal/services/dto"
)

// OrganizationHandler - организации с вложенными филиалами,
// устройствами и дополнениями
type OrganizationHandler struct {
	*BaseHandler
	orgService  *services.OrganizationService
	authService *services.AuthService
}

func NewOrganizationHandler(
	base *BaseHandler,
	orgService *services.OrganizationService,
	authService *services.AuthService,
) *OrganizationHandler {
	return &OrganizationHandler{
		BaseHandler: base,
		orgService:  orgService,
		authService: authService,
	}
}

func (h *OrganizationHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	// Вход организации по своим учетным данным - публичный
	public.POST("/organizations/login", h.Login)

	orgs := protected.Group("/organizations")
	{
		orgs.GET("", h.List)
		orgs.POST("", h.Create)
		orgs.GET("/phone/:phone", h.GetByPhone)
		orgs.GET("/:id", h.Get)
		orgs.PUT("/:id", h.Update)
		orgs.DELETE("/:id", h.Delete)

		orgs.GET("/:id/branches", h.ListBranches)
		orgs.POST("/:id/branches", h.CreateBranch)
		orgs.PUT("/:id/branches/:branchId", h.UpdateBranch)
		orgs.DELETE("/:id/branches/:branchId", h.DeleteBranch)

		orgs.GET("/:id/devices", h.ListDevices)
		orgs.POST("/:id/devices", h.CreateDevice)
		orgs.PUT("/:id/devices/:deviceId", h.UpdateDevice)
		orgs.DELETE("/:id/devices/:deviceId", h.DeleteDevice)

		orgs.GET("/:id/add-ons", h.ListAddOns)
		orgs.POST("/:id/add-ons", h.CreateAddOn)
		orgs.DELETE("/:id/add-ons/:addonId", h.DeleteAddOn)
	}
}

// Login - вход организации, токен с ролью organization
// @Summary Вход организации
// @Description Логин организации по собственным учетным данным
// @Tags organizations
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Учетные данные организации"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} appErrors.ErrorResponse "Неверные учетные данные"
// @Router /organizations/login [post]
func (h *OrganizationHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	tokens, err := h.authService.OrganizationLogin(h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// List - список организаций
// @Summary Список организаций
// @Description Регистратор видит только свои организации
// @Tags organizations
// @Produce json
// @Param search query string false "Поиск по названию или телефону"
// @Param plan query string false "Фильтр по тарифу"
// @Success 200 {array} dto.OrganizationResponse
// @Failure 401 {object} appErrors.ErrorResponse
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) List(c *gin.Context) {
	filter := repositories.OrganizationFilter{
		Search: c.Query("search"),
		Plan:   c.Query("plan"),
	}

	orgs, err := h.orgService.List(h.GetDB(c), middleware.GetPrincipal(c), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orgs)
}

// Get - организация по ID
// @Summary Организация по ID
// @Description Вместе с филиалами, устройствами и дополнениями
// @Tags organizations
// @Produce json
// @Param id path int true "ID организации"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 403 {object} appErrors.ErrorResponse "Чужая организация"
// @Failure 404 {object} appErrors.ErrorResponse "Организация не найдена"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) Get(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	org, err := h.orgService.Get(h.GetDB(c), middleware.GetPrincipal(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}

// GetByPhone - организация по номеру телефона
// @Summary Организация по телефону
// @Tags organizations
// @Produce json
// @Param phone path string true "Телефон организации"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 404 {object} appErrors.ErrorResponse "Организация не найдена"
// @Security BearerAuth
// @Router /organizations/phone/{phone} [get]
func (h *OrganizationHandler) GetByPhone(c *gin.Context) {
	org, err := h.orgService.GetByPhone(h.GetDB(c), middleware.GetPrincipal(c), c.Param("phone"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}

// Create - новая организация
// @Summary Создание организации
// @Tags organizations
// @Accept json
// @Produce json
// @Param request body dto.CreateOrganizationRequest true "Данные организации"
// @Success 201 {object} dto.OrganizationResponse
// @Failure 409 {object} appErrors.ErrorResponse "Телефон уже занят"
// @Failure 422 {object} appErrors.ErrorResponse "Ошибка валидации"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	org, err := h.orgService.Create(h.GetDB(c), middleware.GetPrincipal(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, org)
}

// Update - частичное обновление организации
// @Summary Обновление организации
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path int true "ID организации"
// @Param request body dto.UpdateOrganizationRequest true "Изменяемые поля"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 403 {object} appErrors.ErrorResponse "Чужая организация"
// @Failure 404 {object} appErrors.ErrorResponse "Организация не найдена"
// @Security BearerAuth
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) Update(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateOrganizationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	org, err := h.orgService.Update(h.GetDB(c), middleware.GetPrincipal(c), id, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}

// Delete - удаление организации, только админ
// @Summary Удаление организации
// @Tags organizations
// @Param id path int true "ID организации"
// @Success 204 "Удалена"
// @Failure 403 {object} appErrors.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} appErrors.ErrorResponse "Организация не найдена"
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) Delete(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.orgService.Delete(h.GetDB(c), middleware.GetPrincipal(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Branches ---

// ListBranches - филиалы организации
// @Summary Филиалы организации
// @Tags organizations
// @Produce json
// @Param id path int true "ID организации"
// @Success 200 {array} models.Branch
// @Failure 403 {object} appErrors.ErrorResponse "Чужая организация"
// @Failure 404 {object} appErrors.ErrorResponse "Организация не найдена"
// @Security BearerAuth
// @Router /organizations/{id}/branches [get]
func (h *OrganizationHandler) ListBranches(c *gin.Context) {
	orgID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	branches, err := h.orgService.ListBranches(h.GetDB(c), middleware.GetPrincipal(c), orgID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, branches)
}

// CreateBranch - новый филиал
// @Summary Создание филиала
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path int true "ID организации"
// @Param request body dto.CreateBranchRequest true "Данные филиала"
// @Success 201 {object} models.Branch
// @Failure 404 {object} appErrors.ErrorResponse "Организация не найдена"
// @Security BearerAuth
// @Router /organizations/{id}/branches [post]
func (h *OrganizationHandler) CreateBranch(c *gin.Context) {
	orgID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateBranchRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	branch, err := h.orgService.CreateBranch(h.GetDB(c), middleware.GetPrincipal(c), orgID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, branch)
}

// UpdateBranch - обновление филиала
// @Summary Обновление филиала
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path int true "ID организации"
// @Param branchId path int true "ID филиала"
// @Param request body dto.UpdateBranchRequest true "Изменяемые поля"
// @Success 200 {object} models.Branch
// @Failure 404 {object} appErrors.ErrorResponse "Филиал не найден"
// @Security BearerAuth
// @Router /organizations/{id}/branches/{branchId} [put]
func (h *OrganizationHandler) UpdateBranch(c *gin.Context) {
	orgID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	branchID, err := ParseParamUint(c, "branchId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateBranchRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	branch, err := h.orgService.UpdateBranch(h.GetDB(c), middleware.GetPrincipal(c), orgID, branchID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, branch)
}

// DeleteBranch - удаление филиала вместе с его устройствами
// @Summary Удаление филиала
// @Tags organizations
// @Param id path int true "ID организации"
// @Param branchId path int true "ID филиала"
// @Success 204 "Удален"
// @Failure 404 {object} appErrors.ErrorResponse "Филиал не найден"
// @Security BearerAuth
// @Router /organizations/{id}/branches/{branchId} [delete]
func (h *OrganizationHandler) DeleteBranch(c *gin.Context) {
	orgID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	branchID, err := ParseParamUint(c, "branchId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.orgService.DeleteBranch(h.GetDB(c), middleware.GetPrincipal(c), orgID, branchID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Devices ---

// ListDevices - устройства всех филиалов организации
// @Summary Устройства организации
// @Tags organizations
// @Produce json
// @Param id path int true "ID организации"
// @Success 200 {array} models.Device
// @Failure 403 {object} appErrors.ErrorResponse "Чужая организация"
// @Failure 404 {object} appErrors.ErrorResponse "Организация не найдена"
// @Security BearerAuth
// @Router /organizations/{id}/devices [get]
func (h *OrganizationHandler) ListDevices(c *gin.Context) {
	orgID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	devices, err := h.orgService.ListDevices(h.GetDB(c), middleware.GetPrincipal(c), orgID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, devices)
}

// CreateDevice - новое устройство в филиале организации
// @Summary Создание устройства
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path int true "ID организации"
// @Param request body dto.CreateDeviceRequest true "Данные устройства"
// @Success 201 {object} models.Device
// @Failure 400 {object} appErrors.ErrorResponse "Филиал не принадлежит организации"
// @Security BearerAuth
// @Router /organizations/{id}/devices [post]
func (h *OrganizationHandler) CreateDevice(c *gin.Context) {
	orgID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateDeviceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	device, err := h.orgService.CreateDevice(h.GetDB(c), middleware.GetPrincipal(c), orgID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, device)
}

// UpdateDevice - обновление устройства
// @Summary Обновление устройства
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path int true "ID организации"
// @Param deviceId path string true "ID устройства"
// @Param request body dto.UpdateDeviceRequest true "Изменяемые поля"
// @Success 200 {object} models.Device
// @Failure 404 {object} appErrors.ErrorResponse "Устройство не найдено"
// @Security BearerAuth
// @Router /organizations/{id}/devices/{deviceId} [put]
func (h *OrganizationHandler) UpdateDevice(c *gin.Context) {
	orgID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateDeviceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	device, err := h.orgService.UpdateDevice(h.GetDB(c), middleware.GetPrincipal(c), orgID, c.Param("deviceId"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, device)
}

// DeleteDevice - удаление устройства
// @Summary Удаление устройства
// @Tags organizations
// @Param id path int true "ID организации"
// @Param deviceId path string true "ID устройства"
// @Success 204 "Удалено"
// @Failure 404 {object} appErrors.ErrorResponse "Устройство не найдено"
// @Security BearerAuth
// @Router /organizations/{id}/devices/{deviceId} [delete]
func (h *OrganizationHandler) DeleteDevice(c *gin.Context) {
	orgID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.orgService.DeleteDevice(h.GetDB(c), middleware.GetPrincipal(c), orgID, c.Param("deviceId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Add-ons ---

// ListAddOns - дополнения к тарифу организации
// @Summary Дополнения организации
// @Tags organizations
// @Produce json
// @Param id path int true "ID организации"
// @Success 200 {array} models.AddOn
// @Failure 403 {object} appErrors.ErrorResponse "Чужая организация"
// @Failure 404 {object} appErrors.ErrorResponse "Организация не найдена"
// @Security BearerAuth
// @Router /organizations/{id}/add-ons [get]
func (h *OrganizationHandler) ListAddOns(c *gin.Context) {
	orgID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	addOns, err := h.orgService.ListAddOns(h.GetDB(c), middleware.GetPrincipal(c), orgID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, addOns)
}

// CreateAddOn - платное дополнение к тарифу
// @Summary Создание дополнения
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path int true "ID организации"
// @Param request body dto.CreateAddOnRequest true "Данные дополнения"
// @Success 201 {object} models.AddOn
// @Failure 422 {object} appErrors.ErrorResponse "Неизвестный тип дополнения"
// @Security BearerAuth
// @Router /organizations/{id}/add-ons [post]
func (h *OrganizationHandler) CreateAddOn(c *gin.Context) {
	orgID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateAddOnRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	addOn, err := h.orgService.CreateAddOn(h.GetDB(c), middleware.GetPrincipal(c), orgID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, addOn)
}

// DeleteAddOn - удаление дополнения
// @Summary Удаление дополнения
// @Tags organizations
// @Param id path int true "ID организации"
// @Param addonId path int true "ID дополнения"
// @Success 204 "Удалено"
// @Failure 404 {object} appErrors.ErrorResponse "Дополнение не найдено"
// @Security BearerAuth
// @Router /organizations/{id}/add-ons/{addonId} [delete]
func (h *OrganizationHandler) DeleteAddOn(c *gin.Context) {
	orgID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.orgService.DeleteAddOn(h.GetDB(c), middleware.GetPrincipal(c), orgID, c.Param("addonId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
