package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminpanel_backend/internal/middleware"
	"adminpanel_backend/internal/services"
	"adminpanel_backend/internal/services/dto"
)

// PlanHandler - тарифные планы. Чтение публичное (страница прайсинга),
// запись доступна только админу.
type PlanHandler struct {
	*BaseHandler
	planService *services.PlanService
}

func NewPlanHandler(base *BaseHandler, planService *services.PlanService) *PlanHandler {
	return &PlanHandler{
		BaseHandler: base,
		planService: planService,
	}
}

func (h *PlanHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/plans", h.List)
	public.GET("/plans/:id", h.Get)

	plans := protected.Group("/plans")
	{
		plans.POST("", h.Create)
		plans.PUT("/:id", h.Update)
		plans.DELETE("/:id", h.Delete)
	}
}

// List - список тарифов, без токена видны только активные
// @Summary Список тарифов
// @Tags plans
// @Produce json
// @Success 200 {array} models.CustomPlan
// @Router /plans [get]
func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.planService.List(h.GetDB(c), middleware.GetPrincipal(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// Get - тариф по ID
// @Summary Тариф по ID
// @Tags plans
// @Produce json
// @Param id path int true "ID тарифа"
// @Success 200 {object} models.CustomPlan
// @Failure 404 {object} appErrors.ErrorResponse "Тариф не найден"
// @Router /plans/{id} [get]
func (h *PlanHandler) Get(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	plan, err := h.planService.Get(h.GetDB(c), middleware.GetPrincipal(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Create - новый тариф, только админ
// @Summary Создание тарифа
// @Tags plans
// @Accept json
// @Produce json
// @Param request body dto.CreatePlanRequest true "Данные тарифа"
// @Success 201 {object} models.CustomPlan
// @Failure 409 {object} appErrors.ErrorResponse "Имя тарифа уже занято"
// @Security BearerAuth
// @Router /plans [post]
func (h *PlanHandler) Create(c *gin.Context) {
	var req dto.CreatePlanRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	plan, err := h.planService.Create(h.GetDB(c), middleware.GetPrincipal(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// Update - обновление тарифа, только админ
// @Summary Обновление тарифа
// @Tags plans
// @Accept json
// @Produce json
// @Param id path int true "ID тарифа"
// @Param request body dto.UpdatePlanRequest true "Изменяемые поля"
// @Success 200 {object} models.CustomPlan
// @Failure 404 {object} appErrors.ErrorResponse "Тариф не найден"
// @Security BearerAuth
// @Router /plans/{id} [put]
func (h *PlanHandler) Update(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdatePlanRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	plan, err := h.planService.Update(h.GetDB(c), middleware.GetPrincipal(c), id, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Delete - удаление тарифа, только админ
// @Summary Удаление тарифа
// @Tags plans
// @Param id path int true "ID тарифа"
// @Success 204 "Удален"
// @Failure 404 {object} appErrors.ErrorResponse "Тариф не найден"
// @Security BearerAuth
// @Router /plans/{id} [delete]
func (h *PlanHandler) Delete(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.planService.Delete(h.GetDB(c), middleware.GetPrincipal(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
