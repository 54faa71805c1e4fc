package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-app/utils"
)

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(ContextRole)
		if userRole == "" {
			utils.AbortWithError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			return
		}

		for _, r := range roles {
			if userRole == r {
				c.Next()
				return
			}
		}
		utils.AbortWithError(c, http.StatusForbidden, fmt.Errorf("%s access required", strings.Join(roles, " or ")))
	}
}
