package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminpanel_backend/internal/middleware"
	"adminpanel_backend/internal/services"
	"adminpanel_backend/internal/services/dto"
)

// PayoutHandler - выплаты сотрудникам
type PayoutHandler struct {
	*BaseHandler
	payoutService *services.PayoutService
}

func NewPayoutHandler(base *BaseHandler, payoutService *services.PayoutService) *PayoutHandler {
	return &PayoutHandler{
		BaseHandler:   base,
		payoutService: payoutService,
	}
}

func (h *PayoutHandler) RegisterRoutes(protected *gin.RouterGroup) {
	payouts := protected.Group("/user-payouts")
	{
		payouts.GET("", h.List)
		payouts.POST("", h.Create)
		payouts.DELETE("/:id", h.Delete)
	}
}

// List - выплаты с фильтрами по сотруднику и датам
// @Summary Список выплат
// @Tags payouts
// @Produce json
// @Param user_id query int false "ID сотрудника"
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {array} models.UserPayout
// @Failure 403 {object} appErrors.ErrorResponse
// @Security BearerAuth
// @Router /user-payouts [get]
func (h *PayoutHandler) List(c *gin.Context) {
	var query dto.PayoutListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	payouts, err := h.payoutService.List(h.GetDB(c), middleware.GetPrincipal(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payouts)
}

// Create - новая выплата сотруднику, только админ
// @Summary Создание выплаты
// @Tags payouts
// @Accept json
// @Produce json
// @Param request body dto.CreatePayoutRequest true "Данные выплаты"
// @Success 201 {object} models.UserPayout
// @Failure 404 {object} appErrors.ErrorResponse "Сотрудник не найден"
// @Failure 422 {object} appErrors.ErrorResponse "Неизвестный источник"
// @Security BearerAuth
// @Router /user-payouts [post]
func (h *PayoutHandler) Create(c *gin.Context) {
	var req dto.CreatePayoutRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	payout, err := h.payoutService.Create(h.GetDB(c), middleware.GetPrincipal(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payout)
}

// Delete - удаление выплаты, только админ
// @Summary Удаление выплаты
// @Tags payouts
// @Param id path int true "ID выплаты"
// @Success 204 "Удалена"
// @Failure 404 {object} appErrors.ErrorResponse "Выплата не найдена"
// @Security BearerAuth
// @Router /user-payouts/{id} [delete]
func (h *PayoutHandler) Delete(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.payoutService.Delete(h.GetDB(c), middleware.GetPrincipal(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
