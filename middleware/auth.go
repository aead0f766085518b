package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dreamydestiny/utils"
)

// TokenCookieName is the cookie carrying the signed auth token.
const TokenCookieName = "token"

// ClaimsContextKey is where verified claims are stored on the request
// context for downstream handlers.
const ClaimsContextKey = "user"

// CookieAuth verifies the signed token found in the request's cookie. A
// missing or invalid token short-circuits with 401; on success the decoded
// claims are attached to the request context.
//
// Note: no data route currently mounts this middleware — every data
// endpoint is intentionally reachable unauthenticated, matching the
// deployed frontend's expectations.
func CookieAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(TokenCookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "not authorized"})
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "not authorized"})
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}
