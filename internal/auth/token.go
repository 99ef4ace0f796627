package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/salao-m2a/salon-scheduler/internal/domain/rbac"
	"github.com/salao-m2a/salon-scheduler/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID    uint
	Role      rbac.Role
	JTI       string
	ExpiresAt time.Time
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    24 * time.Hour,
	}
}

func (m *TokenManager) Generate(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":  float64(user.ID),
		"role": user.Role,
		"jti":  uuid.NewString(),
		"exp":  now.Add(m.ttl).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	jti, _ := claims["jti"].(string)

	var expiresAt time.Time
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt = time.Unix(int64(exp), 0)
	}

	return &Claims{
		UserID:    uint(sub),
		Role:      rbac.ParseRole(role),
		JTI:       jti,
		ExpiresAt: expiresAt,
	}, nil
}
