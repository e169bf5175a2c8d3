package access

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/shenikar/urgences_dashboard/internal/models"
)

const tokenIssuer = "urgences-dashboard"

// ActorClaims - содержимое токена участника
type ActorClaims struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Region string `json:"region,omitempty"`
	jwt.RegisteredClaims
}

// TokenService выпускает и разбирает HS256 токены участников.
// Пароли не проверяются, токен лишь переносит роль и регион.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(actor models.Actor) (string, error) {
	now := time.Now()
	claims := &ActorClaims{
		Name:   actor.Name,
		Role:   string(actor.Role),
		Region: actor.Region,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse проверяет подпись и возвращает нормализованного участника
func (s *TokenService) Parse(tokenString string) (models.Actor, error) {
	claims := &ActorClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return models.Actor{}, fmt.Errorf("invalid actor token: %w", err)
	}
	if !token.Valid {
		return models.Actor{}, errors.New("invalid actor token")
	}

	return Normalize(models.Actor{
		ID:     claims.Subject,
		Name:   claims.Name,
		Role:   models.Role(claims.Role),
		Region: claims.Region,
	}), nil
}
