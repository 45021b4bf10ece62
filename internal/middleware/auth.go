package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cms-admin/internal/auth"
)

const (
	// IdentityKey is the context key for the verified caller identity
	IdentityKey = "identity"

	bearerPrefix = "Bearer "
)

// RequireAuth returns a Gin middleware that verifies the Authorization
// bearer token on every request. Requests without a valid token are
// rejected with 401 before the handler runs.
func RequireAuth(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header must use the Bearer scheme"})
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// GetIdentity retrieves the verified identity from the gin context.
func GetIdentity(c *gin.Context) *auth.Identity {
	if v, exists := c.Get(IdentityKey); exists {
		if id, ok := v.(*auth.Identity); ok {
			return id
		}
	}
	return nil
}
