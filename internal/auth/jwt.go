package auth

import (
	"errors"
	"time"

	"jobbridge_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Классифицированные ошибки проверки токена
var (
	// ErrTokenExpired - подпись верна, но срок действия истек
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed - строка не является JWT
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenInvalid - неверная подпись или метод подписи
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims - полезная нагрузка access и refresh токенов
type Claims struct {
	UserID string          `json:"user_id"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager подписывает и проверяет JWT (HS256).
// Access и refresh токены подписываются РАЗНЫМИ секретами:
// компрометация одного не позволяет подделать другой.
// Структура неизменяема после создания и безопасна для
// конкурентного использования.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenManager создает TokenManager из конфигурации приложения
func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// AccessTTL возвращает срок жизни access-токена
func (m *TokenManager) AccessTTL() time.Duration { return m.accessTTL }

// RefreshTTL возвращает срок жизни refresh-токена
func (m *TokenManager) RefreshTTL() time.Duration { return m.refreshTTL }

// GenerateAccessToken выдает короткоживущий access-токен с ролью
func (m *TokenManager) GenerateAccessToken(userID string, role models.UserRole) (string, error) {
	return generate(userID, role, m.accessSecret, m.accessTTL)
}

// GenerateRefreshToken выдает refresh-токен. Роль включается в claims,
// чтобы при ротации можно было выдать корректный access-токен без
// повторного похода в БД за пользователем.
func (m *TokenManager) GenerateRefreshToken(userID string, role models.UserRole) (string, error) {
	return generate(userID, role, m.refreshSecret, m.refreshTTL)
}

// ParseAccessToken проверяет access-токен
func (m *TokenManager) ParseAccessToken(tokenString string) (*Claims, error) {
	return parse(tokenString, m.accessSecret)
}

// ParseRefreshToken проверяет refresh-токен
func (m *TokenManager) ParseRefreshToken(tokenString string) (*Claims, error) {
	return parse(tokenString, m.refreshSecret)
}

func generate(userID string, role models.UserRole, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parse(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
