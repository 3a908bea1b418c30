package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskhub/internal/core/auth"
	resp "taskhub/internal/transport/http/response"
)

const claimsKey = "claims"

// AuthJWT authenticates the bearer token and, when requireRole is set,
// gates on exact role equality. Missing, expired and invalid tokens are
// all 401; only a role mismatch is 403. Verified claims are injected into
// the context for handlers.
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.AbortErr(c, http.StatusUnauthorized, "Missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, auth.ErrTokenExpired) {
				msg = "Token expired"
			}
			resp.AbortErr(c, http.StatusUnauthorized, msg)
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			resp.AbortErr(c, http.StatusForbidden, "Forbidden")
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the verified claims injected by AuthJWT.
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
