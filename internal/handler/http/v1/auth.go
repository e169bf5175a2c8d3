package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/urgences_dashboard/internal/access"
	"github.com/shenikar/urgences_dashboard/internal/config"
	"github.com/shenikar/urgences_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

const actorContextKey = "actor"

// APIKeyAuthMiddleware - middleware для аутентификации клиента по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if key == apiKey {
				isValid = true
				break
			}
		}

		if !isValid {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// ActorMiddleware определяет участника запроса по токену Authorization: Bearer.
// Запрос без токена выполняется от имени анонимного гражданина.
func ActorMiddleware(tokens *access.TokenService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := models.Actor{Role: models.RoleCitizen}

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			if !strings.HasPrefix(authHeader, "Bearer ") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
				return
			}
			parsed, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				log.WithError(err).Warn("Invalid actor token")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			actor = parsed
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

func actorFromContext(c *gin.Context) models.Actor {
	if v, ok := c.Get(actorContextKey); ok {
		if actor, ok := v.(models.Actor); ok {
			return actor
		}
	}
	return models.Actor{Role: models.RoleCitizen}
}
