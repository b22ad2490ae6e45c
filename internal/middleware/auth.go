package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"adminpanel_backend/internal/appErrors"
	"adminpanel_backend/internal/auth"
	"adminpanel_backend/internal/logger"
)

const principalKey = "principal"

// AuthMiddleware - middleware проверки JWT.
// Только аутентифицирует: кладет Principal в контекст, решения о доступе
// принимает таблица auth.Authorize в сервисах.
func AuthMiddleware(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tm.ParseToken(tokenStr)
		if err != nil {
			appErrors.HandleError(c, appErrors.ErrInvalidToken)
			c.Abort()
			return
		}

		subjectID, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil {
			appErrors.HandleError(c, appErrors.ErrInvalidToken)
			c.Abort()
			return
		}

		principal := &auth.Principal{
			SubjectID: uint(subjectID),
			Role:      claims.Role,
		}
		c.Set(principalKey, principal)

		// Прокидываем субъекта в логи
		ctx := logger.WithUserID(c.Request.Context(), claims.Subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	appErrors.HandleError(c, appErrors.ErrUnauthorized)
	c.Abort()
}

// GetPrincipal извлекает аутентифицированного субъекта из контекста.
// Возвращает nil для неаутентифицированных запросов (публичные маршруты).
func GetPrincipal(c *gin.Context) *auth.Principal {
	val, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	p, ok := val.(*auth.Principal)
	if !ok {
		return nil
	}
	return p
}
