package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/auth"
	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
)

const (
	// AuthorizationHeader is the header carrying the bearer credential.
	AuthorizationHeader = "Authorization"
	// IdentityKey is the context key the verified identity is stored under.
	IdentityKey = "identity"
)

// Auth returns a middleware that verifies the bearer token and attaches the
// resulting identity to the request context. A missing credential and an
// invalid one both produce 401; they are only distinguished in the logs.
func Auth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthorizationHeader)
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if tokenString == "" {
			logger.Debug("request without credential",
				"request_id", GetRequestID(c),
				"path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "authentication required",
			})
			return
		}

		identity, err := tokens.Parse(tokenString)
		if err != nil {
			logger.Debug("credential rejected",
				"request_id", GetRequestID(c),
				"path", c.FullPath(),
				"error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid or expired token",
			})
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// GetIdentity retrieves the verified identity from the gin context. Returns
// nil on routes that did not pass through Auth.
func GetIdentity(c *gin.Context) *domain.Identity {
	if value, exists := c.Get(IdentityKey); exists {
		if identity, ok := value.(*domain.Identity); ok {
			return identity
		}
	}
	return nil
}
