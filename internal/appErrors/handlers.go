package appErrors

import (
	"adminpanel_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный конверт ошибки: {"error": {code, message, details?}}
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError отправляет ошибку клиенту в стандартном конверте.
// Внутренние ошибки (5xx) логируются, но наружу уходят без деталей и стектрейсов.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "Server error", appErr,
			"path", c.Request.URL.Path,
		)
		appErr = New(CodeInternalError, "Internal server error", appErr.HTTPCode)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
