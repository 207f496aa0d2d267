package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/FSDTeam-SAA/loadboard/internal/core/domain"
	"github.com/FSDTeam-SAA/loadboard/internal/core/service"
)

const actorKey = "actor"

func AuthMiddleware(authSvc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}

		actor, err := authSvc.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

func actorFrom(c *gin.Context) domain.Actor {
	actor, _ := c.Get(actorKey)
	return actor.(domain.Actor)
}
