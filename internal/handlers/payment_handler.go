package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminpanel_backend/internal/middleware"
	"adminpanel_backend/internal/services"
	"adminpanel_backend/internal/services/dto"
)

// PaymentHandler - поступления от организаций и сверка
type PaymentHandler struct {
	*BaseHandler
	paymentService *services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(protected *gin.RouterGroup) {
	payments := protected.Group("/payments")
	{
		payments.GET("", h.List)
		payments.POST("", h.Create)
		payments.GET("/sverka/:orgId", h.Sverka)
	}
}

// List - поступления с фильтрами по организации, источнику и датам
// @Summary Список платежей
// @Tags payments
// @Produce json
// @Param organization_id query int false "ID организации"
// @Param source query string false "Источник платежа"
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Param limit query int false "Лимит выдачи"
// @Param offset query int false "Смещение"
// @Success 200 {array} models.Payment
// @Failure 422 {object} appErrors.ErrorResponse "Неизвестный источник"
// @Security BearerAuth
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	var query dto.PaymentListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	payments, err := h.paymentService.List(h.GetDB(c), middleware.GetPrincipal(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// Create - регистрация поступления
// @Summary Создание платежа
// @Tags payments
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentRequest true "Данные платежа"
// @Success 201 {object} models.Payment
// @Failure 404 {object} appErrors.ErrorResponse "Организация не найдена"
// @Failure 422 {object} appErrors.ErrorResponse "Неизвестный источник"
// @Security BearerAuth
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	payment, err := h.paymentService.Create(h.GetDB(c), middleware.GetPrincipal(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// Sverka - сверка платежей организации за период
// @Summary Сверка по организации
// @Description Итоговая сумма и список платежей за период
// @Tags payments
// @Produce json
// @Param orgId path int true "ID организации"
// @Param start_date query string true "YYYY-MM-DD"
// @Param end_date query string true "YYYY-MM-DD"
// @Success 200 {object} dto.SverkaResponse
// @Failure 404 {object} appErrors.ErrorResponse "Организация не найдена"
// @Failure 422 {object} appErrors.ErrorResponse "Некорректный период"
// @Security BearerAuth
// @Router /payments/sverka/{orgId} [get]
func (h *PaymentHandler) Sverka(c *gin.Context) {
	orgID, err := ParseParamUint(c, "orgId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	report, err := h.paymentService.Sverka(
		h.GetDB(c),
		middleware.GetPrincipal(c),
		orgID,
		c.Query("start_date"),
		c.Query("end_date"),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
