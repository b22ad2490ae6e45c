package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"adminpanel_backend/internal/appErrors"
)

const refreshTokenType = "refresh"

// Claims - полезная нагрузка токена.
// Subject хранит ID пользователя или организации, Role - его роль
// ("admin"/"moderator"/"registrator" для сотрудников, "organization" для организаций).
type Claims struct {
	Role      string `json:"role"`
	TokenType string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет JWT (HS256)
type TokenManager struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func NewTokenManager(secret string, accessTTLMinutes, refreshTTLMinutes int) *TokenManager {
	return &TokenManager{
		Secret:     secret,
		AccessTTL:  time.Duration(accessTTLMinutes) * time.Minute,
		RefreshTTL: time.Duration(refreshTTLMinutes) * time.Minute,
	}
}

// GenerateAccessToken создает access-токен для субъекта с ролью
func (tm *TokenManager) GenerateAccessToken(subjectID uint, role string) (string, error) {
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", subjectID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tm.AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(tm.Secret))
}

// GenerateRefreshToken создает refresh-токен (type=refresh)
func (tm *TokenManager) GenerateRefreshToken(subjectID uint, role string) (string, error) {
	claims := Claims{
		Role:      role,
		TokenType: refreshTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", subjectID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tm.RefreshTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(tm.Secret))
}

// ParseToken проверяет подпись и срок access-токена.
// Refresh-токен сюда не проходит: им нельзя авторизовать запросы.
func (tm *TokenManager) ParseToken(tokenString string) (*Claims, error) {
	claims, err := tm.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType == refreshTokenType {
		return nil, appErrors.ErrInvalidToken
	}
	return claims, nil
}

// ParseRefreshToken проверяет refresh-токен (требует type=refresh)
func (tm *TokenManager) ParseRefreshToken(tokenString string) (*Claims, error) {
	claims, err := tm.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != refreshTokenType {
		return nil, appErrors.ErrInvalidToken
	}
	return claims, nil
}

func (tm *TokenManager) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(tm.Secret), nil
	})
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, appErrors.ErrInvalidToken
	}
	return claims, nil
}
