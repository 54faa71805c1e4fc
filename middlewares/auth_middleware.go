package middlewares

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-app/utils"
)

// Context keys set by AuthMiddleware
const (
	ContextRole        = "role"
	ContextToken       = "token"
	ContextTokenExpiry = "token_expiry"
)

// AuthMiddleware accepts "Authorization: Bearer <token>", or ?token= for websocket
// clients that cannot set headers.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractToken(c)
		if err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, err)
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, err)
			return
		}
		if claims.Role == "" {
			utils.AbortWithError(c, http.StatusUnauthorized, errors.New("token carries no role"))
			return
		}

		expiry := time.Now().Add(utils.TokenTTL)
		if claims.ExpiresAt != nil {
			expiry = claims.ExpiresAt.Time
		}

		c.Set(ContextRole, claims.Role)
		c.Set(ContextToken, tokenString)
		c.Set(ContextTokenExpiry, expiry)
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, error) {
	if header := c.GetHeader("Authorization"); header != "" {
		if !strings.HasPrefix(header, "Bearer ") {
			return "", errors.New("authorization header must use the Bearer scheme")
		}
		return strings.TrimPrefix(header, "Bearer "), nil
	}
	if token := c.Query("token"); token != "" {
		return token, nil
	}
	return "", errors.New("authorization header missing")
}
