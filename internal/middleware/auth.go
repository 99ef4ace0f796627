package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/salao-m2a/salon-scheduler/internal/auth"
	"github.com/salao-m2a/salon-scheduler/internal/domain/rbac"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextTokenJTI = "tokenJTI"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	return parts[1], true
}

func AuthMiddleware(tm *auth.TokenManager, revoked *auth.RevocationList) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		claims, err := tm.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		if revoked.IsRevoked(c.Request.Context(), claims.JTI) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token_revoked"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextTokenJTI, claims.JTI)

		c.Next()
	}
}

// OptionalAuthMiddleware é usado pelos autocompletes: chamada sem
// credencial segue adiante sem identidade e o handler devolve lista
// vazia, nunca um erro
func OptionalAuthMiddleware(tm *auth.TokenManager, revoked *auth.RevocationList) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := tm.Parse(tokenString)
		if err != nil || revoked.IsRevoked(c.Request.Context(), claims.JTI) {
			c.Next()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextTokenJTI, claims.JTI)

		c.Next()
	}
}

// RequireRole bloqueia com 403 quem não estiver em um dos papéis
func RequireRole(roles ...rbac.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := RoleFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_identity"})
			return
		}

		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
	}
}

func RoleFrom(c *gin.Context) (rbac.Role, bool) {
	v, ok := c.Get(ContextUserRole)
	if !ok {
		return "", false
	}
	role, ok := v.(rbac.Role)
	return role, ok
}

func UserIDFrom(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
