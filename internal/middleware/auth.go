package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/helpdesk-platform/ticket-service/internal/service"
)

// claimsKey is the gin context key under which RequireSession stores the
// decoded session claims.
const claimsKey = "sessionClaims"

// RequireSession validates the session token carried in the named cookie and
// stores the decoded claims in the request context. A missing, malformed,
// tampered or expired token is rejected with a uniform 401; the reason is
// never distinguished to the caller.
func RequireSession(tokens service.TokenService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the session claims stored by RequireSession.
func ClaimsFromContext(c *gin.Context) (*service.SessionClaims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*service.SessionClaims)
	return claims, ok
}
